package renewal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal/core/events"
	"github.com/Naxdouglas/contract-renewal-sys/internal/officer"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// Mock repository for testing
type mockRenewalRepository struct {
	requests        map[int64]*Request
	nextID          int64
	returnError     error
	openLookupError error
}

func newMockRenewalRepository() *mockRenewalRepository {
	return &mockRenewalRepository{
		requests: make(map[int64]*Request),
		nextID:   1,
	}
}

func (m *mockRenewalRepository) Create(r *Request) error {
	if m.returnError != nil {
		return m.returnError
	}
	r.ID = m.nextID
	m.nextID++
	copied := *r
	m.requests[r.ID] = &copied
	return nil
}

func (m *mockRenewalRepository) GetByID(id int64) (*Request, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	if r, ok := m.requests[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, ErrNotFound
}

func (m *mockRenewalRepository) GetAll() ([]*Request, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	all := make([]*Request, 0, len(m.requests))
	for _, r := range m.requests {
		copied := *r
		all = append(all, &copied)
	}
	return all, nil
}

func (m *mockRenewalRepository) GetOpenByOfficerID(officerID int64) (*Request, error) {
	if m.openLookupError != nil {
		return nil, m.openLookupError
	}
	for _, r := range m.requests {
		if r.OfficerID == officerID && !r.ReturnedToHR {
			copied := *r
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRenewalRepository) Update(r *Request) error {
	if m.returnError != nil {
		return m.returnError
	}
	copied := *r
	m.requests[r.ID] = &copied
	return nil
}

// Mock officer lookup for testing
type mockOfficerGetter struct {
	officers map[int64]*officer.Officer
}

func (m *mockOfficerGetter) GetByID(id int64) (*officer.Officer, error) {
	if o, ok := m.officers[id]; ok {
		return o, nil
	}
	return nil, officer.ErrNotFound
}

// Recording event bus for testing
type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(ctx context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

var _ = ginkgo.Describe("RenewalService", func() {
	var (
		service  *Service
		mockRepo *mockRenewalRepository
		officers *mockOfficerGetter
		bus      *recordingBus
		ctx      context.Context
	)

	validRecommendation := RecommendDTO{
		Teaching:       "Consistently strong evaluations",
		Research:       "Two journal publications",
		Discipline:     "No incidents",
		Contribution:   "Chairs the curriculum committee",
		Recommendation: RecommendRenew,
	}

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		mockRepo = newMockRenewalRepository()
		officers = &mockOfficerGetter{officers: map[int64]*officer.Officer{
			1: {ID: 1, UserID: 10, FirstName: "James", LastName: "Okello", Position: "Lecturer",
				ContractEndDate: time.Now().AddDate(0, 0, 20)},
		}}
		bus = &recordingBus{}
		service = NewService(mockRepo, officers, bus, slog.Default())
	})

	ginkgo.Describe("Submit", func() {
		ginkgo.It("should open a request with the officer snapshot", func() {
			// When
			req, err := service.Submit(ctx, SubmitRequestDTO{OfficerID: 1, HRNotes: "Contract expires next month"})

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(req.ID).ToNot(gomega.BeZero())
			gomega.Expect(req.OfficerName).To(gomega.Equal("James Okello"))
			gomega.Expect(req.Position).To(gomega.Equal("Lecturer"))
			gomega.Expect(req.HRSubmitted).To(gomega.BeTrue())
			gomega.Expect(req.CanBeRecommended()).To(gomega.BeTrue())
		})

		ginkgo.It("should publish a submitted event", func() {
			_, err := service.Submit(ctx, SubmitRequestDTO{OfficerID: 1})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(bus.published).To(gomega.HaveLen(1))
			gomega.Expect(bus.published[0].EventType()).To(gomega.Equal(events.EventTypeRenewalSubmitted))
		})

		ginkgo.It("should refuse a second open request for the same officer", func() {
			_, err := service.Submit(ctx, SubmitRequestDTO{OfficerID: 1})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Submit(ctx, SubmitRequestDTO{OfficerID: 1})

			gomega.Expect(err).To(gomega.Equal(ErrAlreadyOpen))
		})

		ginkgo.It("should fail when the open-request lookup fails instead of creating another request", func() {
			// Given
			_, err := service.Submit(ctx, SubmitRequestDTO{OfficerID: 1})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			mockRepo.openLookupError = errors.New("db: connection reset")

			// When
			_, err = service.Submit(ctx, SubmitRequestDTO{OfficerID: 1})

			// Then
			gomega.Expect(err).To(gomega.MatchError("db: connection reset"))
			gomega.Expect(mockRepo.requests).To(gomega.HaveLen(1))
		})

		ginkgo.It("should allow a new request once the previous one is decided", func() {
			req, err := service.Submit(ctx, SubmitRequestDTO{OfficerID: 1})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Recommend(ctx, req.ID, validRecommendation)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			_, err = service.Decide(ctx, req.ID, DecideDTO{Decision: DecisionApproved, StrategicNote: "Renew for one year"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Submit(ctx, SubmitRequestDTO{OfficerID: 1})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should reject an unknown officer", func() {
			_, err := service.Submit(ctx, SubmitRequestDTO{OfficerID: 42})
			gomega.Expect(err).To(gomega.Equal(officer.ErrNotFound))
		})

		ginkgo.It("should reject a terminated officer", func() {
			now := time.Now()
			officers.officers[2] = &officer.Officer{ID: 2, UserID: 11, TerminatedAt: &now}

			_, err := service.Submit(ctx, SubmitRequestDTO{OfficerID: 2})

			gomega.Expect(err).To(gomega.Equal(officer.ErrTerminated))
		})
	})

	ginkgo.Describe("Recommend", func() {
		var requestID int64

		ginkgo.BeforeEach(func() {
			req, err := service.Submit(ctx, SubmitRequestDTO{OfficerID: 1})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			requestID = req.ID
			bus.published = nil
		})

		ginkgo.It("should record the evaluation and move the request to the approver", func() {
			// When
			req, err := service.Recommend(ctx, requestID, validRecommendation)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(req.ManagerRecommendation).To(gomega.Equal(RecommendRenew))
			gomega.Expect(req.Teaching).To(gomega.Equal(validRecommendation.Teaching))
			gomega.Expect(req.RecommendedAt).ToNot(gomega.BeNil())
			gomega.Expect(req.CanBeDecided()).To(gomega.BeTrue())

			gomega.Expect(bus.published).To(gomega.HaveLen(1))
			gomega.Expect(bus.published[0].EventType()).To(gomega.Equal(events.EventTypeRenewalRecommended))
		})

		ginkgo.It("should leave the request untouched when a performance field is missing", func() {
			incomplete := validRecommendation
			incomplete.Research = ""

			_, err := service.Recommend(ctx, requestID, incomplete)

			gomega.Expect(err).To(gomega.HaveOccurred())
			stored, _ := mockRepo.GetByID(requestID)
			gomega.Expect(stored.ManagerRecommendation).To(gomega.BeEmpty())
			gomega.Expect(bus.published).To(gomega.BeEmpty())
		})

		ginkgo.It("should conflict when recommending twice", func() {
			_, err := service.Recommend(ctx, requestID, validRecommendation)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Recommend(ctx, requestID, validRecommendation)

			gomega.Expect(err).To(gomega.Equal(ErrInvalidState))
		})
	})

	ginkgo.Describe("Decide", func() {
		var requestID int64

		ginkgo.BeforeEach(func() {
			req, err := service.Submit(ctx, SubmitRequestDTO{OfficerID: 1})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			requestID = req.ID
		})

		ginkgo.It("should refuse to decide before a recommendation exists", func() {
			_, err := service.Decide(ctx, requestID, DecideDTO{Decision: DecisionApproved, StrategicNote: "note"})
			gomega.Expect(err).To(gomega.Equal(ErrInvalidState))
		})

		ginkgo.Context("after a recommendation", func() {
			ginkgo.BeforeEach(func() {
				_, err := service.Recommend(ctx, requestID, validRecommendation)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				bus.published = nil
			})

			ginkgo.It("should record the decision and return the request to HR", func() {
				// When
				req, err := service.Decide(ctx, requestID, DecideDTO{
					Decision:      DecisionApproved,
					StrategicNote: "Critical skills, budget confirmed",
				})

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(req.ApproverDecision).To(gomega.Equal(DecisionApproved))
				gomega.Expect(req.StrategicNote).To(gomega.Equal("Critical skills, budget confirmed"))
				gomega.Expect(req.ReturnedToHR).To(gomega.BeTrue())
				gomega.Expect(req.DecidedAt).ToNot(gomega.BeNil())

				gomega.Expect(bus.published).To(gomega.HaveLen(1))
				gomega.Expect(bus.published[0].EventType()).To(gomega.Equal(events.EventTypeRenewalDecided))
			})

			ginkgo.It("should reject a decision without a strategic note and change nothing", func() {
				// When
				_, err := service.Decide(ctx, requestID, DecideDTO{Decision: DecisionRejected})

				// Then
				gomega.Expect(err).To(gomega.Equal(ErrMissingNote))

				stored, _ := mockRepo.GetByID(requestID)
				gomega.Expect(stored.ApproverDecision).To(gomega.BeEmpty())
				gomega.Expect(stored.ReturnedToHR).To(gomega.BeFalse())
				gomega.Expect(bus.published).To(gomega.BeEmpty())
			})

			ginkgo.It("should conflict when deciding twice", func() {
				_, err := service.Decide(ctx, requestID, DecideDTO{Decision: DecisionApproved, StrategicNote: "note"})
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				_, err = service.Decide(ctx, requestID, DecideDTO{Decision: DecisionRejected, StrategicNote: "other"})

				gomega.Expect(err).To(gomega.Equal(ErrInvalidState))
			})
		})
	})

	ginkgo.Describe("List", func() {
		ginkgo.It("should drive a full workflow through the queues", func() {
			req, err := service.Submit(ctx, SubmitRequestDTO{OfficerID: 1})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			pending, err := service.List(StatusPending)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(pending).To(gomega.HaveLen(1))

			_, err = service.Recommend(ctx, req.ID, validRecommendation)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			pending, _ = service.List(StatusPending)
			gomega.Expect(pending).To(gomega.BeEmpty())
			approverQueue, _ := service.List(StatusPendingApprover)
			gomega.Expect(approverQueue).To(gomega.HaveLen(1))

			_, err = service.Decide(ctx, req.ID, DecideDTO{Decision: DecisionApproved, StrategicNote: "note"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			approved, _ := service.List(StatusApproved)
			gomega.Expect(approved).To(gomega.HaveLen(1))
			gomega.Expect(approved[0].IsTerminal()).To(gomega.BeTrue())
		})
	})
})
