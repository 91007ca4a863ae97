package internal_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestInternal(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal Suite")
}

func appError(err error) *errors.AppError {
	appErr, ok := errors.IsAppError(err)
	Expect(ok).To(BeTrue())
	return appErr
}

var _ = Describe("FromDBError", func() {
	pgError := func(code, constraint string) error {
		return &pgconn.PgError{Code: code, ConstraintName: constraint, Message: "driver text"}
	}

	DescribeTable("driver errors keep the constraint name",
		func(code string, want errors.ErrorCode) {
			appErr := appError(errors.FromDBError(pgError(code, "uq_x"), "payment"))
			Expect(appErr.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(appErr.Code).To(Equal(want))
			Expect(appErr.Details).To(Equal(map[string]string{"constraint": "uq_x"}))
		},
		Entry("unique violation", "23505", errors.ErrCodeDuplicate),
		Entry("foreign key violation", "23503", errors.ErrCodeReference),
		Entry("check violation", "23514", errors.ErrCodeValidationFailed),
	)

	It("finds a wrapped driver error", func() {
		wrapped := stderrors.Join(stderrors.New("insert payments"), pgError("23505", "payments_pkey"))
		Expect(appError(errors.FromDBError(wrapped, "payment")).Details).To(Equal(map[string]string{"constraint": "payments_pkey"}))
	})

	DescribeTable("dialector-translated errors still answer 400",
		func(code string) {
			translated := postgres.Dialector{}.Translate(pgError(code, "chk_vacation_dates"))
			appErr := appError(errors.FromDBError(translated, "vacation"))
			Expect(appErr.StatusCode).To(Equal(http.StatusBadRequest))
		},
		Entry("unique violation", "23505"),
		Entry("foreign key violation", "23503"),
		Entry("check violation", "23514"),
	)

	It("maps missing rows to 404 and hides anything else behind a 500", func() {
		Expect(appError(errors.FromDBError(gorm.ErrRecordNotFound, "role")).StatusCode).To(Equal(http.StatusNotFound))

		appErr := appError(errors.FromDBError(stderrors.New("connection reset"), "role"))
		Expect(appErr.StatusCode).To(Equal(http.StatusInternalServerError))
		Expect(appErr.Message).NotTo(ContainSubstring("connection reset"))
	})

	It("passes application errors through and ignores nil", func() {
		notFound := errors.NewNotFoundError("employee not found", errors.ErrCodeEmployeeNotFound)
		Expect(errors.FromDBError(notFound, "employee")).To(BeIdenticalTo(notFound))
		Expect(errors.FromDBError(nil, "employee")).To(BeNil())
	})
})
