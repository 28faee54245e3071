package server

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/clockface/internal/clockface"
)

func newTestServer(t *testing.T, interval time.Duration) *httptest.Server {
	t.Helper()
	s := New(clockface.New(64), Options{
		Interval: interval,
		Clock:    clockface.FixedClock{Time: time.Date(2026, 10, 18, 3, 0, 0, 0, time.UTC)},
		Logger:   log.New(io.Discard, "", 0),
	})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t, time.Second)

	res, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, string(body), `<img id="clock"`)

	res, err = http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestClockPNG(t *testing.T) {
	ts := newTestServer(t, time.Second)

	res, err := http.Get(ts.URL + "/clock.png")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "image/png", res.Header.Get("Content-Type"))

	img, err := png.Decode(res.Body)
	require.NoError(t, err)
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())
}

func TestClockPNGAt(t *testing.T) {
	ts := newTestServer(t, time.Second)

	get := func(at string) []byte {
		res, err := http.Get(ts.URL + "/clock.png?at=" + at)
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)
		b, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		return b
	}

	// the fixed clock says 03:00
	res, err := http.Get(ts.URL + "/clock.png")
	require.NoError(t, err)
	now, err := io.ReadAll(res.Body)
	res.Body.Close()
	require.NoError(t, err)

	require.True(t, bytes.Equal(now, get("03:00")))
	require.False(t, bytes.Equal(now, get("09:00")))

	res, err = http.Get(ts.URL + "/clock.png?at=noon")
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestWebSocketFrames(t *testing.T) {
	ts := newTestServer(t, 20*time.Millisecond)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	for i := 0; i < 3; i++ {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		kind, data, err := conn.ReadMessage()
		require.NoError(t, err)
		require.Equal(t, websocket.BinaryMessage, kind)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		require.Equal(t, 64, img.Bounds().Dx())
	}

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
}

func TestTickerSchedulerCancel(t *testing.T) {
	fired := make(chan struct{}, 16)
	cancel := tickerScheduler{}.Every(5*time.Millisecond, func() { fired <- struct{}{} })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker never fired")
	}

	cancel()
	cancel()
	time.Sleep(20 * time.Millisecond)
	for len(fired) > 0 {
		<-fired
	}
	time.Sleep(30 * time.Millisecond)
	require.Empty(t, fired)
}

func TestListenAndServeShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	s := New(clockface.New(32), Options{Logger: log.New(io.Discard, "", 0)})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, addr) }()

	require.Eventually(t, func() bool {
		res, err := http.Get("http://" + addr + "/clock.png")
		if err != nil {
			return false
		}
		res.Body.Close()
		return res.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
