package fixture

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"go.uber.org/goleak"
)

func startServer(t *testing.T) *Server {
	RegisterTestingT(t)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s, err := Start("127.0.0.1:0", logger)
	Expect(err).To(BeNil())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s
}

func get(url string) (int, string) {
	resp, err := http.Get(url)
	Expect(err).To(BeNil())
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	Expect(err).To(BeNil())
	return resp.StatusCode, string(body)
}

func TestServesBoardMarkup(t *testing.T) {
	s := startServer(t)

	status, body := get(s.URL() + "/")
	Expect(status).To(Equal(http.StatusOK))
	Expect(body).To(ContainSubstring(`section.className = "box-content"`))
	Expect(body).To(ContainSubstring(`article.className = "group"`))
	Expect(body).To(ContainSubstring(`class="flex flex-col gap-2"`))
	Expect(body).To(ContainSubstring(`tabindex="1" class="w-full"`))
	Expect(body).To(ContainSubstring(`class="hidden absolute options"`))
}

func TestServesCompleteBoardAndPlayground(t *testing.T) {
	s := startServer(t)

	status, body := get(s.URL() + CompleteBoardPath)
	Expect(status).To(Equal(http.StatusOK))
	Expect(body).To(ContainSubstring("Kanban Task Management"))

	status, _ = get(s.URL() + LegacyBoardPath)
	Expect(status).To(Equal(http.StatusOK))

	status, body = get(s.URL() + PlaygroundPath)
	Expect(status).To(Equal(http.StatusOK))
	Expect(body).To(ContainSubstring(`id="source"`))

	status, _ = get(s.URL() + "/missing.html")
	Expect(status).To(Equal(http.StatusNotFound))
}

func TestShutdownStopsServing(t *testing.T) {
	RegisterTestingT(t)
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s, err := Start("127.0.0.1:0", logger)
	Expect(err).To(BeNil())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	Expect(s.Shutdown(ctx)).To(Succeed())

	_, err = http.Get(s.URL() + "/")
	Expect(err).NotTo(BeNil())
}
