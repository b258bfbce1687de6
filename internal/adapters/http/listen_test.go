package httpadapter

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenCapsConnections(t *testing.T) {
	ln, err := Listen("127.0.0.1:0", 1)
	require.NoError(t, err)

	release := make(chan struct{})
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/hold" {
			<-release
		}
		w.WriteHeader(http.StatusNoContent)
	})}
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = srv.Close() })

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: 5 * time.Second}
	url := "http://" + ln.Addr().String()

	held := make(chan error, 1)
	go func() {
		resp, err := client.Get(url + "/hold")
		if err == nil {
			resp.Body.Close()
		}
		held <- err
	}()
	time.Sleep(50 * time.Millisecond)

	second := make(chan int, 1)
	go func() {
		resp, err := client.Get(url + "/")
		if err != nil {
			second <- 0
			return
		}
		resp.Body.Close()
		second <- resp.StatusCode
	}()

	select {
	case <-second:
		t.Fatal("second connection served while the first was held")
	case <-time.After(100 * time.Millisecond):
	}
	close(release)
	require.NoError(t, <-held)
	assert.Equal(t, http.StatusNoContent, <-second)
}

func TestListenBadAddress(t *testing.T) {
	_, err := Listen("127.0.0.1:-1", 0)
	assert.ErrorContains(t, err, "listen 127.0.0.1:-1")
}
