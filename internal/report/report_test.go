package report_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aherreros/shopprobe/internal/domain"
	"github.com/aherreros/shopprobe/internal/report"
)

func sampleSummary() *domain.RunSummary {
	started := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	return &domain.RunSummary{
		Title:      "Storefront E2E Run",
		BaseURL:    "https://www.saucedemo.com",
		StartedAt:  started,
		FinishedAt: started.Add(42 * time.Second),
		Results: []domain.ScenarioResult{
			{Suite: "Login", Name: "admits standard_user to the inventory page", Passed: true, Duration: 3 * time.Second},
			{Suite: "Login", Name: "rejects locked_out_user with a lockout error", Passed: true, Duration: 2 * time.Second},
			{Suite: "Cart", Name: "reaches checkout step one", Failure: "Expected URL to contain checkout-step-one", Duration: 9 * time.Second},
		},
	}
}

var _ = Describe("Writer", func() {
	var writer *report.Writer

	BeforeEach(func() {
		var err error
		writer, err = report.NewWriter()
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("RenderMarkdown", func() {
		It("should render the title, target and verdict", func() {
			md, err := writer.RenderMarkdown(sampleSummary())
			Expect(err).ToNot(HaveOccurred())
			Expect(md).To(ContainSubstring("# Storefront E2E Run"))
			Expect(md).To(ContainSubstring("https://www.saucedemo.com"))
			Expect(md).To(ContainSubstring("**FAILED**"))
			Expect(md).To(ContainSubstring("2 passed, 1 failed, 0 skipped"))
		})

		It("should render one table row per scenario", func() {
			md, err := writer.RenderMarkdown(sampleSummary())
			Expect(err).ToNot(HaveOccurred())
			Expect(md).To(ContainSubstring("| Login | admits standard_user to the inventory page | passed | 3s |"))
			Expect(md).To(ContainSubstring("| Cart | reaches checkout step one | failed | 9s |"))
		})

		It("should include failure details", func() {
			md, err := writer.RenderMarkdown(sampleSummary())
			Expect(err).ToNot(HaveOccurred())
			Expect(md).To(ContainSubstring("## Cart: reaches checkout step one"))
			Expect(md).To(ContainSubstring("Expected URL to contain checkout-step-one"))
		})

		It("should report PASSED when no scenario failed", func() {
			summary := sampleSummary()
			summary.Results = summary.Results[:2]
			md, err := writer.RenderMarkdown(summary)
			Expect(err).ToNot(HaveOccurred())
			Expect(md).To(ContainSubstring("**PASSED**"))
		})
	})

	Describe("WriteFiles", func() {
		It("should write markdown and HTML reports", func() {
			dir := GinkgoT().TempDir()
			err := writer.WriteFiles(sampleSummary(), dir, "run.md", "run.html")
			Expect(err).ToNot(HaveOccurred())

			md, err := os.ReadFile(filepath.Join(dir, "run.md"))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(md)).To(ContainSubstring("# Storefront E2E Run"))

			html, err := os.ReadFile(filepath.Join(dir, "run.html"))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(html)).To(ContainSubstring("<table>"))
			Expect(string(html)).To(ContainSubstring("<title>Storefront E2E Run</title>"))
		})

		It("should skip formats with empty filenames", func() {
			dir := GinkgoT().TempDir()
			err := writer.WriteFiles(sampleSummary(), dir, "run.md", "")
			Expect(err).ToNot(HaveOccurred())

			entries, err := os.ReadDir(dir)
			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})
	})
})

var _ = Describe("RenderHTML", func() {
	It("should convert GFM tables", func() {
		html, err := report.RenderHTML("t", "| a | b |\n| --- | --- |\n| 1 | 2 |\n")
		Expect(err).ToNot(HaveOccurred())
		Expect(html).To(ContainSubstring("<table>"))
		Expect(html).To(ContainSubstring("<td>1</td>"))
	})

	It("should escape the title", func() {
		html, err := report.RenderHTML("a <b> c", "hi")
		Expect(err).ToNot(HaveOccurred())
		Expect(html).To(ContainSubstring("<title>a &lt;b&gt; c</title>"))
	})
})

var _ = Describe("Summary round trip", func() {
	It("should save and load a summary", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "run_summary.json")

		original := sampleSummary()
		Expect(report.SaveSummary(original, path)).To(Succeed())

		loaded, err := report.LoadSummary(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(loaded.Title).To(Equal(original.Title))
		Expect(loaded.Results).To(HaveLen(3))
		Expect(loaded.Results[2].Failure).To(Equal("Expected URL to contain checkout-step-one"))
	})

	It("should fail to load a missing summary", func() {
		_, err := report.LoadSummary(filepath.Join(GinkgoT().TempDir(), "missing.json"))
		Expect(err).To(HaveOccurred())
	})
})
