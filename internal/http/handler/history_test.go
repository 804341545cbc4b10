package handler_test

import (
	"encoding/json"
	"errors"
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

var _ = Describe("DeepDetectHandler history", func() {
	var (
		h             *handler.DeepDetectHandler
		fakeService   *fake.Service
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.Service)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = decodeWithJSON

		w = httptest.NewRecorder()
		h = handler.NewDeepDetectHandler(zap.NewNop().Sugar(), fakeValidator, fakeService, 1<<20)
	})

	Describe("HandleListHistory", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/history", nil)
			req.Header.Set("Authorization", "Bearer access.token")
			fakeService.ListHistoryReturns([]core.HistoryRecord{
				{ID: "b", Result: core.LabelAI, IsAI: true, Confidence: 90},
				{ID: "a", Result: core.LabelReal, Confidence: 55},
			}, nil)
		})

		JustBeforeEach(func() {
			h.HandleListHistory(w, req)
		})

		When("the user is authenticated", func() {
			It("should return the records as an array", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var records []core.HistoryRecord
				Expect(json.NewDecoder(w.Body).Decode(&records)).To(Succeed())
				Expect(records).To(HaveLen(2))
				Expect(records[0].ID).To(Equal("b"))
				Expect(records[0].IsAI).To(BeTrue())
			})
		})

		When("the user has no records", func() {
			BeforeEach(func() {
				fakeService.ListHistoryReturns([]core.HistoryRecord{}, nil)
			})

			It("should return an empty array", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
			})
		})

		When("the authorization header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("should respond with 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.ListHistoryCallCount()).To(BeZero())
			})
		})

		When("the authorization scheme is not bearer", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			})

			It("should respond with 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.ListHistoryReturns(nil, fakeErr)
			})

			It("should respond with 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleCreateHistory", func() {
		var stamp time.Time

		BeforeEach(func() {
			stamp = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
			req = httptest.NewRequest("POST", "/api/history", strings.NewReader(
				`{"imageName":"dog.jpg","result":"Real","isAI":false,"confidence":64.4}`))
			req.Header.Set("Authorization", "Bearer access.token")
			fakeService.CreateHistoryReturns(core.HistoryRecord{
				ID:         "history-1",
				UserID:     "user-1",
				ImageName:  "dog.jpg",
				Result:     core.LabelReal,
				Confidence: 64,
				Timestamp:  stamp,
			}, nil)
		})

		JustBeforeEach(func() {
			h.HandleCreateHistory(w, req)
		})

		When("the record is valid", func() {
			It("should respond with 201 and the stored record", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var resp struct {
					Message string             `json:"message"`
					Data    core.HistoryRecord `json:"data"`
				}
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp.Message).To(Equal("History saved successfully"))
				Expect(resp.Data.ID).To(Equal("history-1"))
				Expect(resp.Data.Timestamp).To(Equal(stamp))

				_, token, msg := fakeService.CreateHistoryArgsForCall(0)
				Expect(token).To(Equal("access.token"))
				Expect(msg.ImageName).To(Equal("dog.jpg"))
				Expect(msg.Result).To(Equal("Real"))
				Expect(*msg.IsAI).To(BeFalse())
				Expect(msg.Confidence).To(Equal(64.4))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should respond with 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CreateHistoryCallCount()).To(BeZero())
			})
		})

		When("the record is rejected", func() {
			BeforeEach(func() {
				fakeService.CreateHistoryReturns(core.HistoryRecord{}, core.ErrInvalidRecord)
			})

			It("should respond with 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeService.CreateHistoryReturns(core.HistoryRecord{}, core.ErrUnauthorized)
			})

			It("should respond with 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleDeleteHistory", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/api/history/history-1", nil)
			req.SetPathValue("id", "history-1")
			req.Header.Set("Authorization", "Bearer access.token")
		})

		JustBeforeEach(func() {
			h.HandleDeleteHistory(w, req)
		})

		When("the record is deleted", func() {
			It("should respond with 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp handler.Response
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp.Message).To(Equal("History deleted successfully"))

				_, token, id := fakeService.DeleteHistoryArgsForCall(0)
				Expect(token).To(Equal("access.token"))
				Expect(id).To(Equal("history-1"))
			})
		})

		When("the record does not exist", func() {
			BeforeEach(func() {
				fakeService.DeleteHistoryReturns(core.ErrHistoryNotFound)
			})

			It("should respond with 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("RegisterRoutes", func() {
		It("should route path parameters to the delete handler", func() {
			mux := http.NewServeMux()
			h.RegisterRoutes(mux)

			req = httptest.NewRequest("DELETE", "/api/history/abc-123", nil)
			req.Header.Set("Authorization", "Bearer access.token")
			mux.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, _, id := fakeService.DeleteHistoryArgsForCall(0)
			Expect(id).To(Equal("abc-123"))
		})

		It("should answer ping", func() {
			mux := http.NewServeMux()
			h.RegisterRoutes(mux)

			mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/ping", nil))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"pong"`))
		})
	})
})
