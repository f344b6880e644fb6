package officer

import (
	"errors"
	"log/slog"
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal/user"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// Mock repository for testing
type mockOfficerRepository struct {
	officers    map[int64]*Officer
	terminated  map[int64]*Officer
	documents   []*Document
	nextID      int64
	returnError error
}

func newMockOfficerRepository() *mockOfficerRepository {
	return &mockOfficerRepository{
		officers:   make(map[int64]*Officer),
		terminated: make(map[int64]*Officer),
		nextID:     1,
	}
}

func (m *mockOfficerRepository) Create(o *Officer) error {
	if m.returnError != nil {
		return m.returnError
	}
	o.ID = m.nextID
	m.nextID++
	m.officers[o.ID] = o
	return nil
}

func (m *mockOfficerRepository) GetByID(id int64) (*Officer, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	if o, ok := m.officers[id]; ok {
		return o, nil
	}
	if o, ok := m.terminated[id]; ok {
		return o, nil
	}
	return nil, ErrNotFound
}

func (m *mockOfficerRepository) GetByUserID(userID int64) (*Officer, error) {
	for _, o := range m.officers {
		if o.UserID == userID {
			return o, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockOfficerRepository) GetAll() ([]*Officer, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	all := make([]*Officer, 0, len(m.officers))
	for _, o := range m.officers {
		all = append(all, o)
	}
	return all, nil
}

func (m *mockOfficerRepository) GetTerminated() ([]*Officer, error) {
	all := make([]*Officer, 0, len(m.terminated))
	for _, o := range m.terminated {
		all = append(all, o)
	}
	return all, nil
}

func (m *mockOfficerRepository) Update(o *Officer) error {
	if m.returnError != nil {
		return m.returnError
	}
	if o.TerminatedAt != nil {
		delete(m.officers, o.ID)
		m.terminated[o.ID] = o
	} else {
		m.officers[o.ID] = o
	}
	return nil
}

func (m *mockOfficerRepository) AddDocument(doc *Document) error {
	if m.returnError != nil {
		return m.returnError
	}
	doc.ID = int64(len(m.documents) + 1)
	m.documents = append(m.documents, doc)
	return nil
}

// Mock user creator for testing
type mockUserCreator struct {
	created     []user.CreateUserDTO
	nextID      int64
	returnError error
}

func (m *mockUserCreator) Create(dto user.CreateUserDTO) (*user.User, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	m.created = append(m.created, dto)
	m.nextID++
	return &user.User{ID: m.nextID, Username: dto.Username, Role: dto.Role}, nil
}

var _ = ginkgo.Describe("OfficerService", func() {
	var (
		service  *Service
		mockRepo *mockOfficerRepository
		creator  *mockUserCreator
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockOfficerRepository()
		creator = &mockUserCreator{}
		service = NewService(mockRepo, creator, slog.Default())
	})

	seedOfficer := func(endDate time.Time) *Officer {
		o := &Officer{UserID: 99, FirstName: "James", LastName: "Okello", Position: "Lecturer", ContractEndDate: endDate}
		mockRepo.Create(o)
		return o
	}

	ginkgo.Describe("CreateOfficer", func() {
		ginkgo.It("should create the account and the record together", func() {
			// Given
			dto := CreateOfficerDTO{
				Username:        "jokello",
				FirstName:       "James",
				LastName:        "Okello",
				Email:           "jokello@example.com",
				Position:        "Lecturer",
				ContractEndDate: "2026-06-30",
			}

			// When
			o, err := service.CreateOfficer(dto)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(o.ID).ToNot(gomega.BeZero())
			gomega.Expect(o.UserID).To(gomega.Equal(creator.nextID))
			gomega.Expect(creator.created).To(gomega.HaveLen(1))
			gomega.Expect(creator.created[0].Role).To(gomega.Equal("OFFICER"))
			gomega.Expect(creator.created[0].Password).To(gomega.Equal(DefaultPassword))
		})

		ginkgo.It("should reject a malformed end date", func() {
			dto := CreateOfficerDTO{
				Username:        "jokello",
				Email:           "jokello@example.com",
				Position:        "Lecturer",
				ContractEndDate: "30/06/2026",
			}

			_, err := service.CreateOfficer(dto)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(creator.created).To(gomega.BeEmpty())
		})

		ginkgo.It("should not create a record when the account fails", func() {
			creator.returnError = errors.New("username already taken")
			dto := CreateOfficerDTO{
				Username:        "jokello",
				Email:           "jokello@example.com",
				Position:        "Lecturer",
				ContractEndDate: "2026-06-30",
			}

			_, err := service.CreateOfficer(dto)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(mockRepo.officers).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("RenewContract", func() {
		ginkgo.It("should replace the end date", func() {
			// Given
			o := seedOfficer(time.Now().AddDate(0, 0, 10))

			// When
			renewed, err := service.RenewContract(o.ID, RenewContractDTO{ContractEndDate: "2027-01-31"})

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(renewed.ContractEndDate.Format("2006-01-02")).To(gomega.Equal("2027-01-31"))
		})

		ginkgo.It("should refuse to renew a terminated officer", func() {
			o := seedOfficer(time.Now().AddDate(0, 0, 10))
			_, err := service.Terminate(o.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.RenewContract(o.ID, RenewContractDTO{ContractEndDate: "2027-01-31"})

			gomega.Expect(err).To(gomega.Equal(ErrTerminated))
		})

		ginkgo.It("should return not found for an unknown officer", func() {
			_, err := service.RenewContract(42, RenewContractDTO{ContractEndDate: "2027-01-31"})
			gomega.Expect(err).To(gomega.Equal(ErrNotFound))
		})
	})

	ginkgo.Describe("ApproveRenewal", func() {
		ginkgo.It("should renew and flag the approval", func() {
			o := seedOfficer(time.Now().AddDate(0, 0, 10))

			approved, err := service.ApproveRenewal(o.ID, RenewContractDTO{ContractEndDate: "2027-01-31"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(approved.RenewalApproved).To(gomega.BeTrue())
			gomega.Expect(approved.ContractEndDate.Format("2006-01-02")).To(gomega.Equal("2027-01-31"))
		})
	})

	ginkgo.Describe("ToggleCompliance", func() {
		ginkgo.It("should flip the flag each call", func() {
			o := seedOfficer(time.Now().AddDate(1, 0, 0))

			first, err := service.ToggleCompliance(o.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(first.ComplianceStatus).To(gomega.BeTrue())

			second, err := service.ToggleCompliance(o.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(second.ComplianceStatus).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("Terminate", func() {
		ginkgo.It("should move the officer to the terminated collection", func() {
			o := seedOfficer(time.Now().AddDate(1, 0, 0))

			terminated, err := service.Terminate(o.ID)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(terminated.TerminatedAt).ToNot(gomega.BeNil())

			views, err := service.GetAll()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(views).To(gomega.BeEmpty())
		})

		ginkgo.It("should conflict when terminating twice", func() {
			o := seedOfficer(time.Now().AddDate(1, 0, 0))

			_, err := service.Terminate(o.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Terminate(o.ID)
			gomega.Expect(err).To(gomega.Equal(ErrTerminated))
		})

		ginkgo.It("should keep the terminated officer visible in the terminated report", func() {
			o := seedOfficer(time.Now().AddDate(1, 0, 0))
			_, err := service.Terminate(o.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			report, err := service.Report(ReportTerminated)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(report).To(gomega.HaveLen(1))
			gomega.Expect(report[0].ID).To(gomega.Equal(o.ID))
		})
	})

	ginkgo.Describe("AttachDocument", func() {
		ginkgo.It("should record the file against the officer", func() {
			o := seedOfficer(time.Now().AddDate(1, 0, 0))

			doc, err := service.AttachDocument(o.ID, "contract.pdf", "uuid_contract.pdf")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(doc.OfficerID).To(gomega.Equal(o.ID))
			gomega.Expect(doc.FileName).To(gomega.Equal("contract.pdf"))
		})

		ginkgo.It("should return not found for an unknown officer", func() {
			_, err := service.AttachDocument(42, "contract.pdf", "uuid_contract.pdf")
			gomega.Expect(err).To(gomega.Equal(ErrNotFound))
		})
	})
})
