package officer

import (
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestOfficer(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Officer Module Suite")
}

var _ = ginkgo.Describe("ContractStatus", func() {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	ginkgo.It("should report Active when more than 30 days remain", func() {
		endDate := now.AddDate(0, 0, 31)
		gomega.Expect(ContractStatus(endDate, now)).To(gomega.Equal(ContractActive))
	})

	ginkgo.It("should report Expiring Soon at exactly 30 days", func() {
		endDate := now.AddDate(0, 0, 30)
		gomega.Expect(ContractStatus(endDate, now)).To(gomega.Equal(ContractExpiringSoon))
	})

	ginkgo.It("should report Expiring Soon one day before the end date", func() {
		endDate := now.AddDate(0, 0, 1)
		gomega.Expect(ContractStatus(endDate, now)).To(gomega.Equal(ContractExpiringSoon))
	})

	ginkgo.It("should still report Expiring Soon on the end date itself", func() {
		gomega.Expect(ContractStatus(now, now)).To(gomega.Equal(ContractExpiringSoon))
	})

	ginkgo.It("should report Expired the day after the end date", func() {
		endDate := now.AddDate(0, 0, -1)
		gomega.Expect(ContractStatus(endDate, now)).To(gomega.Equal(ContractExpired))
	})

	ginkgo.It("should report Expired for contracts long past", func() {
		endDate := now.AddDate(-1, 0, 0)
		gomega.Expect(ContractStatus(endDate, now)).To(gomega.Equal(ContractExpired))
	})

	ginkgo.It("should ignore the time of day on both sides", func() {
		// End of the 30th day out vs early morning today still counts the
		// same number of calendar days.
		endDate := time.Date(2025, 7, 15, 23, 0, 0, 0, time.UTC)
		early := time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)
		gomega.Expect(ContractStatus(endDate, early)).To(gomega.Equal(ContractExpiringSoon))
	})

	ginkgo.It("should count calendar days in the local zone, not UTC days", func() {
		// In UTC these instants sit only 30 epoch-days apart, but on the
		// local calendar Jan 1 to Feb 1 is 31 days.
		honolulu := time.FixedZone("UTC-10", -10*3600)
		local := time.Date(2026, 1, 1, 20, 0, 0, 0, honolulu)
		endDate := time.Date(2026, 2, 1, 1, 0, 0, 0, honolulu)
		gomega.Expect(ContractStatus(endDate, local)).To(gomega.Equal(ContractActive))
	})

	ginkgo.It("should not expire a contract that ends later the same local day", func() {
		pago := time.FixedZone("UTC-11", -11*3600)
		local := time.Date(2026, 5, 10, 13, 0, 0, 0, pago)
		endDate := time.Date(2026, 5, 10, 10, 0, 0, 0, pago)
		gomega.Expect(ContractStatus(endDate, local)).To(gomega.Equal(ContractExpiringSoon))
	})
})

var _ = ginkgo.Describe("OfficerView", func() {
	ginkgo.It("should attach the derived status without storing it", func() {
		now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		o := &Officer{ID: 1, FirstName: "James", LastName: "Okello", ContractEndDate: now.AddDate(1, 0, 0)}

		view := NewView(o, now)

		gomega.Expect(view.ContractStatus).To(gomega.Equal(ContractActive))
		gomega.Expect(view.ID).To(gomega.Equal(int64(1)))
	})

	ginkgo.It("should build one view per officer", func() {
		now := time.Now()
		officers := []*Officer{
			{ID: 1, ContractEndDate: now.AddDate(1, 0, 0)},
			{ID: 2, ContractEndDate: now.AddDate(0, 0, 10)},
		}

		views := NewViews(officers, now)

		gomega.Expect(views).To(gomega.HaveLen(2))
		gomega.Expect(views[0].ContractStatus).To(gomega.Equal(ContractActive))
		gomega.Expect(views[1].ContractStatus).To(gomega.Equal(ContractExpiringSoon))
	})
})

var _ = ginkgo.Describe("FullName", func() {
	ginkgo.It("should join first and last name", func() {
		o := &Officer{FirstName: "Sarah", LastName: "Nakimuli"}
		gomega.Expect(o.FullName()).To(gomega.Equal("Sarah Nakimuli"))
	})

	ginkgo.It("should cope with a missing part", func() {
		gomega.Expect((&Officer{FirstName: "Sarah"}).FullName()).To(gomega.Equal("Sarah"))
		gomega.Expect((&Officer{LastName: "Nakimuli"}).FullName()).To(gomega.Equal("Nakimuli"))
	})
})
