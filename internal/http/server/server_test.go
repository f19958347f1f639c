package server_test

import (
	"net"
	"net/http"
	"strconv"

	"stekfinance/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func freePort() string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())
	defer l.Close()
	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
}

var _ = Describe("HTTPServer", func() {
	It("serves until shut down", func() {
		port := freePort()
		mux := http.NewServeMux()
		mux.HandleFunc("GET /ping", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		srv := server.NewHTTP(zap.NewNop().Sugar(), mux, port)
		Expect(srv.Addr()).To(Equal(":" + port))
		errChan := srv.Run()

		Eventually(func() (int, error) {
			resp, err := http.Get("http://127.0.0.1:" + port + "/ping")
			if err != nil {
				return 0, err
			}
			defer resp.Body.Close()
			return resp.StatusCode, nil
		}).Should(Equal(http.StatusNoContent))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})
})
