package repository_test

import (
	"context"
	"deepdetect/internal/db"
	"deepdetect/internal/repository"
	"deepdetect/internal/repository/fake"
	"errors"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Repository", func() {
	var (
		repo        *repository.Repository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
		now         time.Time
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		now = time.Date(2025, 5, 4, 10, 30, 0, 0, time.UTC)
		repository.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { repository.TimeNow = time.Now })
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		When("migration succeeds", func() {
			It("should migrate users and history", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				models := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(models).To(HaveLen(2))
				Expect(models[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(models[1]).To(BeAssignableToTypeOf(&repository.History{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, "alice", "  Alice@Example.COM ", "hash")
		})

		When("the email is free", func() {
			It("should store a normalized user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(uuid.Validate(user.ID)).To(Succeed())
				Expect(user.Email).To(Equal("alice@example.com"))
				Expect(user.Username).To(Equal("alice"))
				Expect(user.PasswordHash).To(Equal("hash"))
				Expect(user.CreatedAt).To(Equal(now))

				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateArgsForCall(0)
				Expect(record).To(Equal(&user))
			})
		})

		When("the email is taken", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(db.ErrDuplicate)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrUserExists))
			})
		})
	})

	Describe("GetUserByEmail", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByEmail(ctx, "Bob@Example.com")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
					*entity.(*repository.User) = repository.User{ID: "id-1", Email: "bob@example.com"}
					return nil
				}
			})

			It("should look up by normalized email", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal("id-1"))
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("email"))
				Expect(value).To(Equal("bob@example.com"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByID", func() {
		It("should look up by id", func() {
			_, err := repo.GetUserByID(ctx, "id-7")
			Expect(err).NotTo(HaveOccurred())
			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal("id-7"))
		})
	})

	Describe("UpdatePassword", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.UpdatePassword(ctx, "id-1", "new-hash")
		})

		When("the user exists", func() {
			It("should update the password hash column", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.UpdateColumnCallCount()).To(Equal(1))
				_, model, id, column, value := fakeStorage.UpdateColumnArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(id).To(Equal("id-1"))
				Expect(column).To(Equal("password_hash"))
				Expect(value).To(Equal("new-hash"))
			})
		})

		When("the user is gone", func() {
			BeforeEach(func() {
				fakeStorage.UpdateColumnReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("CreateHistory", func() {
		var (
			input  repository.History
			stored repository.History
			err    error
		)

		BeforeEach(func() {
			input = repository.History{
				UserID:     "user-1",
				ImageName:  "cat.png",
				Result:     "Real",
				Confidence: 87,
			}
		})

		JustBeforeEach(func() {
			stored, err = repo.CreateHistory(ctx, input)
		})

		When("no timestamp is given", func() {
			It("should default it to creation time", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(uuid.Validate(stored.ID)).To(Succeed())
				Expect(stored.CreatedAt).To(Equal(now))
				Expect(stored.Timestamp).To(Equal(now))
				Expect(stored.UserID).To(Equal("user-1"))
			})
		})

		When("a timestamp is given", func() {
			BeforeEach(func() {
				input.Timestamp = now.Add(-time.Hour)
			})

			It("should keep it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stored.Timestamp).To(Equal(now.Add(-time.Hour)))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListHistory", func() {
		var (
			histories []repository.History
			err       error
		)

		JustBeforeEach(func() {
			histories, err = repo.ListHistory(ctx, "user-1")
		})

		When("the user has records", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(_ context.Context, _ string, _ any, _ string, entity any) error {
					*entity.(*[]repository.History) = []repository.History{{ID: "b"}, {ID: "a"}}
					return nil
				}
			})

			It("should return them newest first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(histories).To(HaveLen(2))
				_, column, value, order, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(column).To(Equal("user_id"))
				Expect(value).To(Equal("user-1"))
				Expect(order).To(Equal("timestamp desc"))
			})
		})

		When("the user has no records", func() {
			It("should return an empty list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(histories).NotTo(BeNil())
				Expect(histories).To(BeEmpty())
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteHistory", func() {
		var (
			historyID string
			err       error
		)

		BeforeEach(func() {
			historyID = uuid.NewString()
		})

		JustBeforeEach(func() {
			err = repo.DeleteHistory(ctx, "user-1", historyID)
		})

		When("the record is owned by the user", func() {
			It("should delete by id and owner", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.DeleteWhereCallCount()).To(Equal(1))
				_, model, conds := fakeStorage.DeleteWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.History{}))
				Expect(conds).To(Equal([]db.Cond{
					{Column: "id", Value: historyID},
					{Column: "user_id", Value: "user-1"},
				}))
			})
		})

		When("no record matches", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(db.ErrNotFound)
			})

			It("should return history not found error", func() {
				Expect(err).To(MatchError(repository.ErrHistoryNotFound))
			})
		})

		When("the id is not a uuid", func() {
			BeforeEach(func() {
				historyID = "42"
			})

			It("should return history not found without touching storage", func() {
				Expect(err).To(MatchError(repository.ErrHistoryNotFound))
				Expect(fakeStorage.DeleteWhereCallCount()).To(BeZero())
			})
		})
	})
})
