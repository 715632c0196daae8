package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/LeJamon/goXRPLwallet/internal/config"
	"github.com/LeJamon/goXRPLwallet/internal/core/explain"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/payment"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

const (
	alice = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	bob   = "rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn"
	gw    = "ra5nK24KXen9AHvsdFTKHSANinZseWnPcX"
)

// reply is what the fake server answers to one request. A zero reply is
// never sent.
type reply struct {
	result any
	code   string
}

// fakeServer speaks just enough of the rippled websocket API.
type fakeServer struct {
	mu     sync.Mutex
	calls  map[string]int
	handle func(req map[string]any) reply
}

var upgrader = websocket.Upgrader{}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		var req map[string]any
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		command, _ := req["command"].(string)
		f.mu.Lock()
		f.calls[command]++
		f.mu.Unlock()

		rep := f.handle(req)
		if rep.result == nil && rep.code == "" {
			continue
		}
		resp := map[string]any{"id": req["id"], "type": "response"}
		if rep.code != "" {
			resp["status"] = "error"
			resp["error"] = rep.code
			resp["error_message"] = "rejected"
		} else {
			resp["status"] = "success"
			resp["result"] = rep.result
		}
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}

func (f *fakeServer) count(command string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[command]
}

func ledgerHandler(req map[string]any) reply {
	switch req["command"] {
	case "account_info":
		account := req["account"].(string)
		if account != alice && account != bob {
			return reply{code: codeAccountNotFound}
		}
		return reply{result: map[string]any{"account_data": map[string]any{
			"Account": account, "Balance": "100000000", "OwnerCount": 2, "Flags": 0,
		}}}
	case "account_lines":
		if req["marker"] == nil {
			return reply{result: map[string]any{
				"lines":  []any{map[string]any{"account": gw, "balance": "10", "currency": "USD", "limit": "100", "limit_peer": "0"}},
				"marker": "page2",
			}}
		}
		return reply{result: map[string]any{
			"lines": []any{map[string]any{"account": gw, "balance": "-1.5", "currency": "EUR", "limit": "0", "limit_peer": "5"}},
		}}
	case "server_state":
		return reply{result: map[string]any{"state": map[string]any{
			"validated_ledger": map[string]any{"reserve_base": 10000000, "reserve_inc": 2000000},
		}}}
	}
	return reply{code: "unknownCmd"}
}

func startServer(t *testing.T, handle func(map[string]any) reply) (*fakeServer, config.LookupConfig) {
	t.Helper()
	f := &fakeServer{calls: make(map[string]int), handle: handle}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	return f, config.LookupConfig{
		Endpoint: "ws" + strings.TrimPrefix(srv.URL, "http"),
		Timeout:  2 * time.Second,
	}
}

func dial(t *testing.T, cfg config.LookupConfig) *Client {
	t.Helper()
	c, err := Dial(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClientAccountInfo(t *testing.T) {
	_, cfg := startServer(t, ledgerHandler)
	c := dial(t, cfg)

	info, err := c.AccountInfo(t.Context(), alice)
	require.NoError(t, err)
	assert.Equal(t, alice, info.Account)
	assert.True(t, info.Balance.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, uint32(2), info.OwnerCount)
}

func TestClientAccountNotFound(t *testing.T) {
	_, cfg := startServer(t, ledgerHandler)
	c := dial(t, cfg)

	_, err := c.AccountInfo(t.Context(), gw)
	assert.ErrorIs(t, err, explain.ErrAccountNotFound)
	assert.Contains(t, err.Error(), gw)
}

func TestClientTrustLinesFollowsMarker(t *testing.T) {
	f, cfg := startServer(t, ledgerHandler)
	c := dial(t, cfg)

	lines, err := c.TrustLines(t.Context(), alice)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 2, f.count("account_lines"))

	assert.Equal(t, "USD", lines[0].Currency)
	assert.True(t, lines[0].Limit.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "EUR", lines[1].Currency)
	assert.True(t, lines[1].Balance.Equal(decimal.RequireFromString("-1.5")))
	assert.True(t, lines[1].LimitPeer.Equal(decimal.NewFromInt(5)))
}

func TestClientReserves(t *testing.T) {
	_, cfg := startServer(t, ledgerHandler)
	c := dial(t, cfg)

	reserves, err := c.Reserves(t.Context())
	require.NoError(t, err)
	assert.True(t, reserves.Base.Equal(decimal.NewFromInt(10)))
	assert.True(t, reserves.Increment.Equal(decimal.NewFromInt(2)))
}

func TestClientRPCError(t *testing.T) {
	_, cfg := startServer(t, func(map[string]any) reply { return reply{code: "noNetwork"} })
	c := dial(t, cfg)

	_, err := c.Reserves(t.Context())
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, "server_state", rpcErr.Command)
	assert.Equal(t, "noNetwork", rpcErr.Code)
}

func TestClientTimeout(t *testing.T) {
	_, cfg := startServer(t, func(map[string]any) reply { return reply{} })
	cfg.Timeout = 50 * time.Millisecond
	c := dial(t, cfg)

	_, err := c.AccountInfo(t.Context(), alice)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClientClosed(t *testing.T) {
	_, cfg := startServer(t, ledgerHandler)
	c := dial(t, cfg)
	require.NoError(t, c.Close())

	_, err := c.AccountInfo(t.Context(), alice)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestClientConcurrentCalls(t *testing.T) {
	_, cfg := startServer(t, ledgerHandler)
	c := dial(t, cfg)

	var wg sync.WaitGroup
	for _, account := range []string{alice, bob, alice, bob} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			info, err := c.AccountInfo(t.Context(), account)
			if assert.NoError(t, err) {
				assert.Equal(t, account, info.Account)
			}
		}()
	}
	wg.Wait()
}

func TestValidateAgainstServer(t *testing.T) {
	_, cfg := startServer(t, ledgerHandler)
	c := dial(t, cfg)

	ok := payment.NewPayment(alice, bob, types.MustNative("50"))
	assert.NoError(t, explain.Validate(t.Context(), ok, c))

	// 100 XRP balance, 14 XRP reserve for two owned objects.
	tooMuch := payment.NewPayment(alice, bob, types.MustNative("90"))
	assert.True(t, explain.IsKind(explain.Validate(t.Context(), tooMuch, c), explain.KindInsufficientBalance))
}
