package officer

import (
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("BuildReport", func() {
	var (
		now      time.Time
		officers []*Officer
	)

	ginkgo.BeforeEach(func() {
		now = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		officers = []*Officer{
			{ID: 1, FirstName: "James", ContractEndDate: now.AddDate(1, 0, 0)},
			{ID: 2, FirstName: "Sarah", ContractEndDate: now.AddDate(0, 0, 14)},
			{ID: 3, FirstName: "Peter", ContractEndDate: now.AddDate(0, 0, -5)},
		}
	})

	ginkgo.It("should include every officer in the all report", func() {
		report := BuildReport(ReportAll, officers, now)
		gomega.Expect(report).To(gomega.HaveLen(3))
	})

	ginkgo.It("should keep only Expiring Soon contracts in the expiring report", func() {
		report := BuildReport(ReportExpiring, officers, now)

		gomega.Expect(report).To(gomega.HaveLen(1))
		gomega.Expect(report[0].ID).To(gomega.Equal(int64(2)))
		gomega.Expect(report[0].ContractStatus).To(gomega.Equal(ContractExpiringSoon))
	})

	ginkgo.It("should exclude expired contracts from the expiring report", func() {
		report := BuildReport(ReportExpiring, officers, now)
		for _, v := range report {
			gomega.Expect(v.ContractStatus).ToNot(gomega.Equal(ContractExpired))
		}
	})

	ginkgo.It("should return an empty slice, not nil, when nothing is expiring", func() {
		active := []*Officer{{ID: 1, ContractEndDate: now.AddDate(2, 0, 0)}}
		report := BuildReport(ReportExpiring, active, now)

		gomega.Expect(report).ToNot(gomega.BeNil())
		gomega.Expect(report).To(gomega.BeEmpty())
	})
})

var _ = ginkgo.Describe("ValidReportKind", func() {
	ginkgo.It("should accept the three known kinds", func() {
		gomega.Expect(ValidReportKind(ReportAll)).To(gomega.BeTrue())
		gomega.Expect(ValidReportKind(ReportExpiring)).To(gomega.BeTrue())
		gomega.Expect(ValidReportKind(ReportTerminated)).To(gomega.BeTrue())
	})

	ginkgo.It("should reject anything else", func() {
		gomega.Expect(ValidReportKind("everything")).To(gomega.BeFalse())
		gomega.Expect(ValidReportKind("")).To(gomega.BeFalse())
	})
})
