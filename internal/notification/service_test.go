package notification

import (
	"context"
	"log/slog"
	"testing"

	"github.com/Naxdouglas/contract-renewal-sys/internal/core/events"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestNotification(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Notification Module Suite")
}

// Mock repository for testing
type mockNotificationRepository struct {
	notifications map[int64]*Notification
	nextID        int64
}

func newMockNotificationRepository() *mockNotificationRepository {
	return &mockNotificationRepository{notifications: make(map[int64]*Notification), nextID: 1}
}

func (m *mockNotificationRepository) Create(n *Notification) error {
	n.ID = m.nextID
	m.nextID++
	m.notifications[n.ID] = n
	return nil
}

func (m *mockNotificationRepository) GetByID(id int64) (*Notification, error) {
	if n, ok := m.notifications[id]; ok {
		return n, nil
	}
	return nil, ErrNotFound
}

func (m *mockNotificationRepository) GetByUserID(userID int64) ([]*Notification, error) {
	var mine []*Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			mine = append(mine, n)
		}
	}
	return mine, nil
}

func (m *mockNotificationRepository) MarkRead(id int64) error {
	if n, ok := m.notifications[id]; ok {
		n.Read = true
		return nil
	}
	return ErrNotFound
}

var _ = ginkgo.Describe("NotificationService", func() {
	var (
		service  *Service
		mockRepo *mockNotificationRepository
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockNotificationRepository()
		service = NewService(mockRepo, slog.Default())
	})

	ginkgo.Describe("MarkRead", func() {
		ginkgo.It("should mark the owner's notification as read", func() {
			n, err := service.Notify(10, TypeRenewalDecided, "decision made")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			read, err := service.MarkRead(n.ID, 10)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(read.Read).To(gomega.BeTrue())
		})

		ginkgo.It("should hide other users' notifications behind not found", func() {
			n, err := service.Notify(10, TypeRenewalDecided, "decision made")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.MarkRead(n.ID, 11)

			gomega.Expect(err).To(gomega.Equal(ErrNotFound))
			gomega.Expect(mockRepo.notifications[n.ID].Read).To(gomega.BeFalse())
		})

		ginkgo.It("should be idempotent", func() {
			n, err := service.Notify(10, TypeRenewalDecided, "decision made")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.MarkRead(n.ID, 10)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			read, err := service.MarkRead(n.ID, 10)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(read.Read).To(gomega.BeTrue())
		})
	})
})

var _ = ginkgo.Describe("EventHandler", func() {
	var (
		service  *Service
		mockRepo *mockNotificationRepository
		bus      *events.EventBus
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockNotificationRepository()
		service = NewService(mockRepo, slog.Default())
		bus = events.NewEventBus(slog.Default())
		NewEventHandler(service, slog.Default()).RegisterEventHandlers(bus)
	})

	ginkgo.It("should notify the officer when a renewal is submitted", func() {
		event := events.NewRenewalSubmittedEvent(1, 5, 10, "James Okello")

		err := bus.PublishSync(context.Background(), event)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		notices, err := service.GetForUser(10)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(notices).To(gomega.HaveLen(1))
		gomega.Expect(notices[0].Type).To(gomega.Equal(TypeRenewalSubmitted))
	})

	ginkgo.It("should include the outcome in the decision notification", func() {
		event := events.NewRenewalDecidedEvent(1, 10, "Approved")

		err := bus.PublishSync(context.Background(), event)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		notices, _ := service.GetForUser(10)
		gomega.Expect(notices).To(gomega.HaveLen(1))
		gomega.Expect(notices[0].Message).To(gomega.ContainSubstring("Approved"))
	})

	ginkgo.It("should skip events without an officer account", func() {
		event := events.NewRenewalRecommendedEvent(1, 0, "Renew")

		err := bus.PublishSync(context.Background(), event)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		gomega.Expect(mockRepo.notifications).To(gomega.BeEmpty())
	})
})
