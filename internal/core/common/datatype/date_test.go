package datatype_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDatatype(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Datatype Suite")
}

var _ = Describe("Date", func() {
	It("accepts a plain day and a timestamp prefix", func() {
		var d datatype.Date
		Expect(json.Unmarshal([]byte(`"2024-02-29"`), &d)).To(Succeed())
		Expect(d.String()).To(Equal("2024-02-29"))

		Expect(json.Unmarshal([]byte(`"2024-03-01T10:00:00Z"`), &d)).To(Succeed())
		Expect(d.String()).To(Equal("2024-03-01"))
	})

	It("rejects other layouts", func() {
		var d datatype.Date
		Expect(json.Unmarshal([]byte(`"01/03/2024"`), &d)).To(MatchError(ContainSubstring("expected YYYY-MM-DD")))
		Expect(datatype.IsDate("2024-13-01")).To(BeFalse())
		Expect(datatype.IsDate("2024-12-01")).To(BeTrue())
	})

	It("writes null for the zero value", func() {
		b, err := json.Marshal(struct {
			End datatype.Date `json:"end"`
		}{})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(Equal(`{"end":null}`))

		v, err := datatype.Date{}.Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNil())
	})

	It("scans database values", func() {
		var d datatype.Date
		Expect(d.Scan(time.Date(2023, 7, 4, 15, 30, 0, 0, time.Local))).To(Succeed())
		Expect(d.String()).To(Equal("2023-07-04"))
		Expect(d.Scan([]byte("2023-07-05 00:00:00"))).To(Succeed())
		Expect(d.String()).To(Equal("2023-07-05"))
		Expect(d.Scan(42)).To(HaveOccurred())
	})

	It("orders days", func() {
		a, _ := datatype.ParseDate("2024-01-01")
		b, _ := datatype.ParseDate("2024-01-02")
		Expect(a.Before(b)).To(BeTrue())
		Expect(b.Before(a)).To(BeFalse())
	})
})
