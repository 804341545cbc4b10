package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"

	"deepdetect/internal/core"
	"deepdetect/internal/http/handler"
	"deepdetect/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("DeepDetectHandler predict", func() {
	const verdict = `{"isAI":true,"confidence":97.1,"analysisDetails":{"pixelAnomalies":"High"}}`

	var (
		h              *handler.DeepDetectHandler
		fakeService    *fake.Service
		fakeValidator  *fake.RequestValidator
		maxUploadBytes int64
		w              *httptest.ResponseRecorder
		req            *http.Request

		gotSrc     core.ImageSource
		gotContent string
	)

	multipartRequest := func(fields map[string]string, fileName string, content []byte) *http.Request {
		var body bytes.Buffer
		form := multipart.NewWriter(&body)
		for k, v := range fields {
			Expect(form.WriteField(k, v)).To(Succeed())
		}
		if fileName != "" {
			header := make(textproto.MIMEHeader)
			header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
			header.Set("Content-Type", "image/png")
			part, err := form.CreatePart(header)
			Expect(err).NotTo(HaveOccurred())
			_, err = part.Write(content)
			Expect(err).NotTo(HaveOccurred())
		}
		Expect(form.Close()).To(Succeed())

		r := httptest.NewRequest("POST", "/api/predict", &body)
		r.Header.Set("Content-Type", form.FormDataContentType())
		return r
	}

	BeforeEach(func() {
		fakeService = new(fake.Service)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = decodeWithJSON
		maxUploadBytes = 1 << 20
		w = httptest.NewRecorder()
		gotSrc, gotContent = core.ImageSource{}, ""

		fakeService.PredictStub = func(_ context.Context, src core.ImageSource) (core.Prediction, error) {
			gotSrc = src
			if src.Content != nil {
				data, err := io.ReadAll(src.Content)
				if err != nil {
					return core.Prediction{}, err
				}
				gotContent = string(data)
			}
			return core.Prediction{Body: []byte(verdict)}, nil
		}
	})

	JustBeforeEach(func() {
		h = handler.NewDeepDetectHandler(zap.NewNop().Sugar(), fakeValidator, fakeService, maxUploadBytes)
		h.HandlePredict(w, req)
	})

	When("a file is uploaded", func() {
		BeforeEach(func() {
			req = multipartRequest(nil, "photo.png", []byte("png-bytes"))
		})

		It("should pass the file to the service and relay the verdict", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
			Expect(w.Body.String()).To(Equal(verdict))

			Expect(gotSrc.Filename).To(Equal("photo.png"))
			Expect(gotSrc.ContentType).To(Equal("image/png"))
			Expect(gotContent).To(Equal("png-bytes"))
			Expect(w.Header().Get("X-Image-URL")).To(BeEmpty())
		})
	})

	When("the service archived the image", func() {
		BeforeEach(func() {
			req = multipartRequest(nil, "photo.png", []byte("png-bytes"))
			fakeService.PredictStub = nil
			fakeService.PredictReturns(core.Prediction{Body: []byte(verdict), ImageURL: "https://bucket/signed"}, nil)
		})

		It("should expose the link in a header", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("X-Image-URL")).To(Equal("https://bucket/signed"))
		})
	})

	When("a multipart form carries a url", func() {
		BeforeEach(func() {
			req = multipartRequest(map[string]string{"url": "https://example.com/a.jpg"}, "", nil)
		})

		It("should pass the url", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotSrc.Content).To(BeNil())
			Expect(gotSrc.URL).To(Equal("https://example.com/a.jpg"))
		})
	})

	When("a json body carries a url", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/predict", strings.NewReader(`{"url":"https://example.com/b.jpg"}`))
			req.Header.Set("Content-Type", "application/json")
		})

		It("should pass the url", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotSrc.URL).To(Equal("https://example.com/b.jpg"))
		})
	})

	When("an urlencoded form carries a url", func() {
		BeforeEach(func() {
			form := url.Values{"url": {"https://example.com/c.jpg"}}
			req = httptest.NewRequest("POST", "/api/predict", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		})

		It("should pass the url", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotSrc.URL).To(Equal("https://example.com/c.jpg"))
		})
	})

	When("the body is empty", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/predict", http.NoBody)
			fakeService.PredictStub = nil
			fakeService.PredictReturns(core.Prediction{}, core.ErrNoImage)
		})

		It("should respond with 400", func() {
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			var resp handler.Response
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Error).To(Equal("no image or url provided"))
		})
	})

	When("the json body is malformed", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/predict", strings.NewReader(`{"url":`))
			req.Header.Set("Content-Type", "application/json")
			fakeValidator.DecodeJSONPayloadReturns(errors.New("bad json"))
		})

		It("should respond with 400 without calling the service", func() {
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(fakeService.PredictCallCount()).To(BeZero())
		})
	})

	When("the uploaded file is too large", func() {
		BeforeEach(func() {
			maxUploadBytes = 8
			req = multipartRequest(nil, "big.png", bytes.Repeat([]byte("x"), 64))
		})

		It("should respond with 413", func() {
			Expect(w.Code).To(Equal(http.StatusRequestEntityTooLarge))
			Expect(fakeService.PredictCallCount()).To(BeZero())
		})
	})

	When("the prediction fails", func() {
		BeforeEach(func() {
			req = multipartRequest(nil, "photo.png", []byte("png-bytes"))
			fakeService.PredictStub = nil
			fakeService.PredictReturns(core.Prediction{}, errors.New("classifier down"))
		})

		It("should respond with 500 and a generic error", func() {
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			var resp handler.Response
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Error).To(Equal("failed to get prediction"))
		})
	})
})
