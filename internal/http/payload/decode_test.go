package payload_test

import (
	"deepdetect/internal/http/payload"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var (
		decoder payload.Decoder
		body    string
		target  any
		err     error
	)

	JustBeforeEach(func() {
		req := httptest.NewRequest("POST", "/api/test", strings.NewReader(body))
		err = decoder.DecodeJSONPayload(req, target)
	})

	Describe("RegisterRequest", func() {
		var reg *payload.RegisterRequest

		BeforeEach(func() {
			reg = &payload.RegisterRequest{}
			target = reg
			body = `{"username":"alice","email":"alice@example.com","password":"secret1"}`
		})

		When("the payload is valid", func() {
			It("should decode it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(reg.ToMessage().Email).To(Equal("alice@example.com"))
				Expect(reg.ToMessage().Username).To(Equal("alice"))
			})
		})

		When("the email is malformed", func() {
			BeforeEach(func() {
				body = `{"username":"alice","email":"alice","password":"secret1"}`
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
				Expect(err).To(MatchError(ContainSubstring("email")))
			})
		})

		When("the password is too short", func() {
			BeforeEach(func() {
				body = `{"username":"alice","email":"alice@example.com","password":"123"}`
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(ContainSubstring("password")))
			})
		})

		When("a field is missing", func() {
			BeforeEach(func() {
				body = `{"email":"alice@example.com","password":"secret1"}`
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(ContainSubstring("username")))
			})
		})

		When("an unknown field is sent", func() {
			BeforeEach(func() {
				body = `{"username":"alice","email":"alice@example.com","password":"secret1","admin":true}`
			})

			It("should fail decoding", func() {
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})

		When("the body is not json", func() {
			BeforeEach(func() {
				body = `username=alice`
			})

			It("should fail decoding", func() {
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})
	})

	Describe("ResetPasswordRequest", func() {
		BeforeEach(func() {
			target = &payload.ResetPasswordRequest{}
			body = `{"newPassword":"another1"}`
		})

		It("should leave a missing token to the service", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("HistoryRequest", func() {
		var history *payload.HistoryRequest

		BeforeEach(func() {
			history = &payload.HistoryRequest{}
			target = history
			body = `{
				"imageName":"cat.png",
				"imageUrl":"https://bucket/cat.png",
				"result":"AI-Generated",
				"isAI":true,
				"confidence":91.4,
				"analysisDetails":{"pixelAnomalies":"High","textureConsistency":"Low","lightingRealism":"Low","edgeQuality":"Soft"},
				"timestamp":"2025-01-02T03:04:05+02:00"
			}`
		})

		When("the payload is complete", func() {
			It("should convert it to a message", func() {
				Expect(err).NotTo(HaveOccurred())
				msg := history.ToMessage()
				Expect(msg.ImageName).To(Equal("cat.png"))
				Expect(msg.ImageURL).To(Equal("https://bucket/cat.png"))
				Expect(msg.Result).To(Equal("AI-Generated"))
				Expect(msg.IsAI).NotTo(BeNil())
				Expect(*msg.IsAI).To(BeTrue())
				Expect(msg.Confidence).To(Equal(91.4))
				Expect(msg.AnalysisDetails.EdgeQuality).To(Equal("Soft"))
				Expect(msg.Timestamp).To(Equal(time.Date(2025, 1, 2, 1, 4, 5, 0, time.UTC)))
			})
		})

		When("only isAI is sent", func() {
			BeforeEach(func() {
				body = `{"imageName":"cat.png","isAI":false,"confidence":12}`
			})

			It("should accept it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(history.ToMessage().Result).To(BeEmpty())
				Expect(*history.ToMessage().IsAI).To(BeFalse())
			})
		})

		When("neither result nor isAI is sent", func() {
			BeforeEach(func() {
				body = `{"imageName":"cat.png","isAI":null,"confidence":12}`
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(ContainSubstring("result")))
			})
		})

		When("confidence is a numeric string", func() {
			BeforeEach(func() {
				body = `{"imageName":"cat.png","result":"Real","confidence":"85.5"}`
			})

			It("should accept it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(history.ToMessage().Confidence).To(Equal(85.5))
			})
		})

		When("confidence is out of range", func() {
			BeforeEach(func() {
				body = `{"imageName":"cat.png","result":"Real","confidence":150}`
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(ContainSubstring("confidence")))
			})
		})

		When("the image name is missing", func() {
			BeforeEach(func() {
				body = `{"result":"Real","confidence":50}`
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(ContainSubstring("imageName")))
			})
		})
	})

	Describe("PredictRequest", func() {
		BeforeEach(func() {
			target = &payload.PredictRequest{}
			body = `{"url":"not a url"}`
		})

		It("should reject a malformed url", func() {
			Expect(err).To(MatchError(ContainSubstring("url")))
		})
	})
})
