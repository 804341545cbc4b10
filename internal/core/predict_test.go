package core_test

import (
	"context"
	"deepdetect/internal/core"
	"deepdetect/internal/core/fake"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("DeepDetect predict", func() {
	var (
		fakeClassifier *fake.Classifier
		fakeDownloader *fake.Downloader
		fakeArchive    *fake.ImageArchive
		withArchive    bool
		uploadDir      string
		ctx            context.Context

		src        core.ImageSource
		prediction core.Prediction
		err        error

		classifiedName    string
		classifiedContent string
		archivedContent   string
		fakeErr           error
	)

	const verdict = `{"isAI":false,"confidence":71.2,"analysisDetails":{"pixelAnomalies":"Low"}}`

	expectNoTempFiles := func() {
		entries, readErr := os.ReadDir(uploadDir)
		Expect(readErr).NotTo(HaveOccurred())
		Expect(entries).To(BeEmpty())
	}

	BeforeEach(func() {
		fakeClassifier = new(fake.Classifier)
		fakeDownloader = new(fake.Downloader)
		fakeArchive = new(fake.ImageArchive)
		withArchive = false
		uploadDir = filepath.Join(GinkgoT().TempDir(), "uploads")
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		classifiedName, classifiedContent, archivedContent = "", "", ""

		fakeClassifier.ClassifyStub = func(_ context.Context, name string, r io.Reader) ([]byte, error) {
			data, readErr := io.ReadAll(r)
			if readErr != nil {
				return nil, readErr
			}
			classifiedName, classifiedContent = name, string(data)
			return []byte(verdict), nil
		}
		fakeDownloader.DownloadStub = func(_ context.Context, _ string, w io.Writer) (int64, error) {
			n, writeErr := io.WriteString(w, "remote-bytes")
			return int64(n), writeErr
		}
		fakeArchive.StoreStub = func(_ context.Context, _, _ string, r io.Reader, _ int64) (string, error) {
			data, readErr := io.ReadAll(r)
			if readErr != nil {
				return "", readErr
			}
			archivedContent = string(data)
			return "https://bucket/signed", nil
		}

		src = core.ImageSource{
			Filename:    "Holiday.PNG",
			ContentType: "image/png",
			Content:     strings.NewReader("png-bytes"),
		}
	})

	JustBeforeEach(func() {
		var archive core.ImageArchive
		if withArchive {
			archive = fakeArchive
		}
		service := core.NewDeepDetect(zap.NewNop().Sugar(), new(fake.Repository), new(fake.TokenIssuer),
			new(fake.Mailer), fakeClassifier, fakeDownloader, archive, core.Settings{UploadDir: uploadDir})

		prediction, err = service.Predict(ctx, src)
	})

	When("a file is uploaded", func() {
		It("should relay the classifier verdict untouched", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(string(prediction.Body)).To(Equal(verdict))
			Expect(prediction.ImageURL).To(BeEmpty())
		})

		It("should classify a temp copy keeping the extension", func() {
			Expect(classifiedContent).To(Equal("png-bytes"))
			Expect(classifiedName).To(MatchRegexp(`^temp-.*\.png$`))
		})

		It("should remove the temp file", func() {
			expectNoTempFiles()
		})
	})

	When("a file is uploaded and archiving is enabled", func() {
		BeforeEach(func() {
			withArchive = true
		})

		It("should return the archived link", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(prediction.ImageURL).To(Equal("https://bucket/signed"))
			Expect(archivedContent).To(Equal("png-bytes"))

			_, name, contentType, _, size := fakeArchive.StoreArgsForCall(0)
			Expect(name).To(Equal("Holiday.PNG"))
			Expect(contentType).To(Equal("image/png"))
			Expect(size).To(Equal(int64(len("png-bytes"))))
			expectNoTempFiles()
		})
	})

	When("archiving fails", func() {
		BeforeEach(func() {
			withArchive = true
			fakeArchive.StoreStub = nil
			fakeArchive.StoreReturns("", fakeErr)
		})

		It("should still return the verdict without a link", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(string(prediction.Body)).To(Equal(verdict))
			Expect(prediction.ImageURL).To(BeEmpty())
		})
	})

	When("a url is given", func() {
		BeforeEach(func() {
			src = core.ImageSource{URL: " https://example.com/img/cat.webp "}
			withArchive = true
		})

		It("should download and classify the remote image", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeDownloader.DownloadCallCount()).To(Equal(1))
			_, rawURL, _ := fakeDownloader.DownloadArgsForCall(0)
			Expect(rawURL).To(Equal("https://example.com/img/cat.webp"))
			Expect(classifiedContent).To(Equal("remote-bytes"))
			Expect(classifiedName).To(HaveSuffix(".webp"))
		})

		It("should report the source url as image url without archiving", func() {
			Expect(prediction.ImageURL).To(Equal("https://example.com/img/cat.webp"))
			Expect(fakeArchive.StoreCallCount()).To(BeZero())
			expectNoTempFiles()
		})
	})

	When("the url has no usable file name", func() {
		BeforeEach(func() {
			src = core.ImageSource{URL: "https://example.com/render?id=7"}
		})

		It("should fall back to a jpg temp file", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(classifiedName).To(HaveSuffix(".jpg"))
		})
	})

	When("both a file and a url are given", func() {
		BeforeEach(func() {
			src.URL = "https://example.com/cat.jpg"
		})

		It("should use the file", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeDownloader.DownloadCallCount()).To(BeZero())
			Expect(classifiedContent).To(Equal("png-bytes"))
		})
	})

	When("neither a file nor a url is given", func() {
		BeforeEach(func() {
			src = core.ImageSource{URL: "   "}
		})

		It("should return no image error", func() {
			Expect(err).To(MatchError(core.ErrNoImage))
			Expect(fakeClassifier.ClassifyCallCount()).To(BeZero())
		})
	})

	When("the download fails", func() {
		BeforeEach(func() {
			src = core.ImageSource{URL: "https://example.com/cat.jpg"}
			fakeDownloader.DownloadStub = nil
			fakeDownloader.DownloadReturns(0, fakeErr)
		})

		It("should return prediction error and clean up", func() {
			Expect(err).To(MatchError(core.ErrPrediction))
			Expect(err).To(MatchError(fakeErr))
			Expect(fakeClassifier.ClassifyCallCount()).To(BeZero())
			expectNoTempFiles()
		})
	})

	When("the classifier fails", func() {
		BeforeEach(func() {
			fakeClassifier.ClassifyStub = nil
			fakeClassifier.ClassifyReturns(nil, fakeErr)
		})

		It("should return prediction error and clean up", func() {
			Expect(err).To(MatchError(core.ErrPrediction))
			Expect(prediction.Body).To(BeNil())
			expectNoTempFiles()
		})
	})
})
