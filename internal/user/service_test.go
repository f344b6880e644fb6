package user

import (
	"log/slog"
	"testing"

	"github.com/Naxdouglas/contract-renewal-sys/internal/auth"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestUser(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "User Module Suite")
}

// Mock repository for testing
type mockUserRepository struct {
	users  map[int64]*User
	nextID int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[int64]*User), nextID: 1}
}

func (m *mockUserRepository) GetByID(userID int64) (*User, error) {
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (m *mockUserRepository) GetByUsername(username string) (*User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockUserRepository) GetAll() ([]*User, error) {
	all := make([]*User, 0, len(m.users))
	for _, u := range m.users {
		all = append(all, u)
	}
	return all, nil
}

func (m *mockUserRepository) GetByRole(role string) ([]*User, error) {
	var matched []*User
	for _, u := range m.users {
		if u.Role == role {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (m *mockUserRepository) Create(u *User) error {
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepository) Update(u *User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepository) Delete(userID int64) error {
	if u, ok := m.users[userID]; ok {
		u.IsActive = false
		return nil
	}
	return ErrNotFound
}

// Plain hasher so tests don't pay the bcrypt cost
type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

var _ = ginkgo.Describe("UserService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		service = NewService(mockRepo, fakeHasher{}, slog.Default())
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should hash the password and default the role", func() {
			// When
			u, err := service.Create(CreateUserDTO{
				Username: "jokello",
				Password: "secret",
				Email:    "jokello@example.com",
			})

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(u.PasswordHash).To(gomega.Equal("hashed:secret"))
			gomega.Expect(u.Role).To(gomega.Equal(auth.RoleOfficer))
			gomega.Expect(u.IsActive).To(gomega.BeTrue())
		})

		ginkgo.It("should conflict on a taken username", func() {
			_, err := service.Create(CreateUserDTO{Username: "jokello", Password: "x", Email: "a@example.com"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Create(CreateUserDTO{Username: "jokello", Password: "y", Email: "b@example.com"})

			gomega.Expect(err).To(gomega.Equal(ErrUsernameTaken))
		})

		ginkgo.It("should reject an unknown role", func() {
			_, err := service.Create(CreateUserDTO{
				Username: "jokello",
				Password: "x",
				Email:    "a@example.com",
				Role:     "SUPERVISOR",
			})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.It("should replace the editable fields", func() {
			u, err := service.Create(CreateUserDTO{Username: "jokello", Password: "x", Email: "a@example.com"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			updated, err := service.Update(u.ID, UpdateUserDTO{
				Username: "jokello",
				Email:    "new@example.com",
				Role:     auth.RoleManager,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Email).To(gomega.Equal("new@example.com"))
			gomega.Expect(updated.Role).To(gomega.Equal(auth.RoleManager))
		})

		ginkgo.It("should return not found for an unknown user", func() {
			_, err := service.Update(42, UpdateUserDTO{Username: "x", Email: "x@example.com"})
			gomega.Expect(err).To(gomega.Equal(ErrNotFound))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should deactivate the account", func() {
			u, err := service.Create(CreateUserDTO{Username: "jokello", Password: "x", Email: "a@example.com"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(service.Delete(u.ID)).To(gomega.Succeed())
			gomega.Expect(mockRepo.users[u.ID].IsActive).To(gomega.BeFalse())
		})

		ginkgo.It("should return not found for an unknown user", func() {
			gomega.Expect(service.Delete(42)).To(gomega.Equal(ErrNotFound))
		})
	})

	ginkgo.Describe("GetByRole", func() {
		ginkgo.It("should filter accounts by role", func() {
			_, err := service.Create(CreateUserDTO{Username: "m", Password: "x", Email: "m@example.com", Role: auth.RoleManager})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			_, err = service.Create(CreateUserDTO{Username: "o", Password: "x", Email: "o@example.com"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			managers, err := service.GetByRole(auth.RoleManager)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(managers).To(gomega.HaveLen(1))
			gomega.Expect(managers[0].Username).To(gomega.Equal("m"))
		})
	})
})
