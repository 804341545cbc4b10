package client_test

import (
	"context"
	"deepdetect/internal/client"
	"deepdetect/internal/core"
	"deepdetect/internal/http/handler/fake"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Flow", func() {
	var (
		fakeService *fake.Service
		api         *client.API
		flow        *client.Flow
		ctx         context.Context
		now         time.Time
	)

	BeforeEach(func() {
		fakeService, api = newBackend()
		ctx = context.Background()

		now = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
		client.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { client.TimeNow = time.Now })

		fakeService.LoginReturns("signed.token", nil)
		Expect(api.Login(ctx, "alice@example.com", "secret1")).To(Succeed())

		fakeService.PredictReturns(core.Prediction{Body: []byte(verdict), ImageURL: "https://bucket/signed"}, nil)
		fakeService.CreateHistoryReturns(core.HistoryRecord{ID: "history-1", Result: core.LabelAI, IsAI: true, Confidence: 97}, nil)

		flow = client.NewFlow(api)
	})

	It("should start in upload", func() {
		Expect(flow.Step()).To(Equal(client.StepUpload))
		Expect(flow.Image()).To(BeNil())
		Expect(flow.Result()).To(BeNil())
	})

	Describe("selecting an image", func() {
		It("should move to review with a file", func() {
			Expect(flow.SelectFile("photo.png", pngBytes)).To(Succeed())
			Expect(flow.Step()).To(Equal(client.StepReview))
			Expect(flow.Image().Name).To(Equal("photo.png"))
		})

		It("should reject a file that is not an image", func() {
			Expect(flow.SelectFile("notes.txt", []byte("just some text"))).To(MatchError(client.ErrNotAnImage))
			Expect(flow.Step()).To(Equal(client.StepUpload))
		})

		It("should reject an empty file", func() {
			Expect(flow.SelectFile("empty.png", nil)).To(MatchError(client.ErrEmptyFile))
		})

		It("should move to review with a url", func() {
			Expect(flow.SelectURL("https://example.com/img/cat.jpg")).To(Succeed())
			Expect(flow.Step()).To(Equal(client.StepReview))
			Expect(flow.Image().Name).To(Equal("cat.jpg"))
		})

		It("should reject a non http url", func() {
			Expect(flow.SelectURL("")).To(MatchError(client.ErrInvalidURL))
			Expect(flow.SelectURL("ftp://example.com/cat.jpg")).To(MatchError(client.ErrInvalidURL))
			Expect(flow.Step()).To(Equal(client.StepUpload))
		})

		It("should not select twice", func() {
			Expect(flow.SelectFile("photo.png", pngBytes)).To(Succeed())
			Expect(flow.SelectURL("https://example.com/cat.jpg")).To(MatchError(client.ErrInvalidTransition))
		})
	})

	Describe("Analyze", func() {
		It("should not skip review", func() {
			Expect(flow.Analyze(ctx)).To(MatchError(client.ErrInvalidTransition))
			Expect(fakeService.PredictCallCount()).To(BeZero())
		})

		When("the image is a file", func() {
			BeforeEach(func() {
				Expect(flow.SelectFile("photo.png", pngBytes)).To(Succeed())
			})

			It("should predict, save history and show results", func() {
				Expect(flow.Analyze(ctx)).To(Succeed())
				Expect(flow.Step()).To(Equal(client.StepResults))

				result := flow.Result()
				Expect(result.IsAI).To(BeTrue())
				Expect(result.Confidence).To(Equal(97.1))
				Expect(result.Label).To(Equal(core.LabelAI))
				Expect(result.ImageURL).To(Equal("https://bucket/signed"))
				Expect(result.Record.ID).To(Equal("history-1"))

				Expect(fakeService.CreateHistoryCallCount()).To(Equal(1))
				_, token, msg := fakeService.CreateHistoryArgsForCall(0)
				Expect(token).To(Equal("signed.token"))
				Expect(msg.ImageName).To(Equal("photo.png"))
				Expect(msg.ImageURL).To(Equal("https://bucket/signed"))
				Expect(msg.Result).To(Equal(core.LabelAI))
				Expect(*msg.IsAI).To(BeTrue())
				Expect(msg.Confidence).To(Equal(97.1))
				Expect(msg.AnalysisDetails.PixelAnomalies).To(Equal("High"))
				Expect(msg.Timestamp).To(Equal(now))
			})

			It("should stay in review when prediction fails", func() {
				fakeService.PredictReturns(core.Prediction{}, errors.New("classifier down"))

				Expect(flow.Analyze(ctx)).To(HaveOccurred())
				Expect(flow.Step()).To(Equal(client.StepReview))
				Expect(flow.Result()).To(BeNil())
				Expect(fakeService.CreateHistoryCallCount()).To(BeZero())
			})

			It("should stay in review when history cannot be saved", func() {
				fakeService.CreateHistoryReturns(core.HistoryRecord{}, errors.New("db down"))

				Expect(flow.Analyze(ctx)).To(HaveOccurred())
				Expect(flow.Step()).To(Equal(client.StepReview))
				Expect(flow.Result()).To(BeNil())
			})
		})

		When("the image is a url", func() {
			BeforeEach(func() {
				fakeService.PredictReturns(core.Prediction{Body: []byte(`{"isAI":false,"confidence":12.5,"analysisDetails":{}}`)}, nil)
				Expect(flow.SelectURL("https://example.com/img/cat.jpg")).To(Succeed())
			})

			It("should keep the source url as image url", func() {
				Expect(flow.Analyze(ctx)).To(Succeed())
				Expect(flow.Result().Label).To(Equal(core.LabelReal))
				Expect(flow.Result().ImageURL).To(Equal("https://example.com/img/cat.jpg"))

				_, src := fakeService.PredictArgsForCall(0)
				Expect(src.URL).To(Equal("https://example.com/img/cat.jpg"))
			})
		})
	})

	Describe("going back", func() {
		BeforeEach(func() {
			Expect(flow.SelectFile("photo.png", pngBytes)).To(Succeed())
			Expect(flow.Analyze(ctx)).To(Succeed())
		})

		It("should return from results to review keeping the image", func() {
			Expect(flow.Back()).To(Succeed())
			Expect(flow.Step()).To(Equal(client.StepReview))
			Expect(flow.Result()).To(BeNil())
			Expect(flow.Image()).NotTo(BeNil())

			Expect(flow.Back()).To(Succeed())
			Expect(flow.Step()).To(Equal(client.StepUpload))
			Expect(flow.Image()).To(BeNil())

			Expect(flow.Back()).To(MatchError(client.ErrInvalidTransition))
		})

		It("should reset to upload clearing everything", func() {
			flow.Reset()
			Expect(flow.Step()).To(Equal(client.StepUpload))
			Expect(flow.Image()).To(BeNil())
			Expect(flow.Result()).To(BeNil())
		})
	})
})
