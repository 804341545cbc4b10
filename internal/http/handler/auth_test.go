package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"deepdetect/internal/core"
	"deepdetect/internal/http/handler"
	"deepdetect/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func decodeWithJSON(r *http.Request, object any) error {
	return json.NewDecoder(r.Body).Decode(object)
}

var _ = Describe("DeepDetectHandler auth", func() {
	var (
		h             *handler.DeepDetectHandler
		fakeService   *fake.Service
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
		response      handler.Response
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.Service)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = decodeWithJSON

		w = httptest.NewRecorder()
		h = handler.NewDeepDetectHandler(zap.NewNop().Sugar(), fakeValidator, fakeService, 1<<20)
		response = handler.Response{}
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"secret1"}`)
			req = httptest.NewRequest("POST", "/api/auth/register", body)
		})

		JustBeforeEach(func() {
			h.HandleRegister(w, req)
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		})

		When("registration succeeds", func() {
			It("should respond with 201", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(response.Message).To(Equal("User registered successfully"))

				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg).To(Equal(core.RegisterMessage{
					Username: "alice",
					Email:    "alice@example.com",
					Password: "secret1",
				}))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should respond with 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(response.Error).To(ContainSubstring("fake-error"))
				Expect(fakeService.RegisterCallCount()).To(BeZero())
			})
		})

		When("the email is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.ErrUserExists)
			})

			It("should respond with 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(response.Error).To(Equal(core.ErrUserExists.Error()))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(fakeErr)
			})

			It("should respond with 500 and hide the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(response.Error).NotTo(ContainSubstring("fake-error"))
			})
		})
	})

	Describe("HandleLogin", func() {
		var token map[string]string

		BeforeEach(func() {
			body := strings.NewReader(`{"email":"alice@example.com","password":"secret1"}`)
			req = httptest.NewRequest("POST", "/api/auth/login", body)
			fakeService.LoginReturns("signed.token", nil)
			token = nil
		})

		JustBeforeEach(func() {
			h.HandleLogin(w, req)
		})

		When("login succeeds", func() {
			It("should return the token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(json.NewDecoder(w.Body).Decode(&token)).To(Succeed())
				Expect(token).To(HaveKeyWithValue("token", "signed.token"))
			})
		})

		When("the user is unknown", func() {
			BeforeEach(func() {
				fakeService.LoginReturns("", core.ErrUserNotFound)
			})

			It("should respond with 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeService.LoginReturns("", core.ErrIncorrectPassword)
			})

			It("should respond with 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleMe", func() {
		var created time.Time

		BeforeEach(func() {
			created = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			req = httptest.NewRequest("GET", "/api/auth/me", nil)
			req.Header.Set("Authorization", "Bearer access.token")
			fakeService.MeReturns(core.UserProfile{
				ID:        "user-1",
				Username:  "alice",
				Email:     "alice@example.com",
				CreatedAt: created,
			}, nil)
		})

		JustBeforeEach(func() {
			h.HandleMe(w, req)
		})

		When("the token is valid", func() {
			It("should return the profile without password", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).NotTo(ContainSubstring("password"))

				var profile core.UserProfile
				Expect(json.NewDecoder(w.Body).Decode(&profile)).To(Succeed())
				Expect(profile.ID).To(Equal("user-1"))
				Expect(profile.CreatedAt).To(Equal(created))

				_, token := fakeService.MeArgsForCall(0)
				Expect(token).To(Equal("access.token"))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				fakeService.MeReturns(core.UserProfile{}, fmt.Errorf("%w: expired", core.ErrUnauthorized))
			})

			It("should respond with 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the user is gone", func() {
			BeforeEach(func() {
				fakeService.MeReturns(core.UserProfile{}, core.ErrUserNotFound)
			})

			It("should respond with 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleForgotPassword", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/auth/forgot-password", strings.NewReader(`{"email":"alice@example.com"}`))
		})

		JustBeforeEach(func() {
			h.HandleForgotPassword(w, req)
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		})

		When("the mail is sent", func() {
			It("should respond with 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(response.Message).To(Equal("Password reset link sent to email"))
				_, email := fakeService.ForgotPasswordArgsForCall(0)
				Expect(email).To(Equal("alice@example.com"))
			})
		})

		When("the email is unknown", func() {
			BeforeEach(func() {
				fakeService.ForgotPasswordReturns(core.ErrUserNotFound)
			})

			It("should respond with 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the mail cannot be delivered", func() {
			BeforeEach(func() {
				fakeService.ForgotPasswordReturns(fmt.Errorf("%w: %w", core.ErrMailDelivery, fakeErr))
			})

			It("should respond with 500 and a mail error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(response.Error).To(Equal(core.ErrMailDelivery.Error()))
			})
		})
	})

	Describe("HandleResetPassword", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/auth/reset-password", strings.NewReader(`{"token":"reset.token","newPassword":"another1"}`))
		})

		JustBeforeEach(func() {
			h.HandleResetPassword(w, req)
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		})

		When("the reset succeeds", func() {
			It("should respond with 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(response.Message).To(Equal("Password reset successfully"))
				_, token, password := fakeService.ResetPasswordArgsForCall(0)
				Expect(token).To(Equal("reset.token"))
				Expect(password).To(Equal("another1"))
			})
		})

		When("the token is missing", func() {
			BeforeEach(func() {
				fakeService.ResetPasswordReturns(core.ErrResetTokenRequired)
			})

			It("should respond with 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(response.Error).To(Equal("token required"))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeService.ResetPasswordReturns(fmt.Errorf("%w: %w", core.ErrInvalidResetToken, fakeErr))
			})

			It("should respond with 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(response.Error).To(Equal("invalid or expired token"))
			})
		})

		When("the user is gone", func() {
			BeforeEach(func() {
				fakeService.ResetPasswordReturns(core.ErrUserNotFound)
			})

			It("should respond with 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
