// Package lookup reads ledger state from a rippled websocket endpoint for
// pre-submission validation.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/LeJamon/goXRPLwallet/internal/config"
	"github.com/LeJamon/goXRPLwallet/internal/core/codec"
	"github.com/LeJamon/goXRPLwallet/internal/core/explain"
)

const (
	// Page size for account_lines.
	linesPageSize = 400

	codeAccountNotFound = "actNotFound"
)

// ErrClosed is returned for calls on a closed client.
var ErrClosed = errors.New("lookup client closed")

// RPCError is an error response from the server.
type RPCError struct {
	Command string
	Code    string
	Message string
}

func (e *RPCError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Command, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Command, e.Code, e.Message)
}

type response struct {
	ID           uint64          `json:"id"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	Result       json.RawMessage `json:"result"`
	Error        string          `json:"error"`
	ErrorMessage string          `json:"error_message"`
}

// Client is a websocket session with one server. Calls may be issued
// concurrently; responses are matched to requests by id.
type Client struct {
	conn    *websocket.Conn
	log     *zap.Logger
	timeout time.Duration

	writeMu sync.Mutex

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]chan response
	readErr error

	closing atomic.Bool
	done    chan struct{}
}

var _ explain.LedgerLookup = (*Client)(nil)

// Dial connects to cfg.Endpoint. The returned client must be closed.
func Dial(ctx context.Context, cfg config.LookupConfig, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	dialCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, cfg.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.Endpoint, err)
	}
	log.Debug("connected", zap.String("endpoint", cfg.Endpoint))

	c := &Client{
		conn:    conn,
		log:     log,
		timeout: cfg.Timeout,
		pending: make(map[uint64]chan response),
		done:    make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// Close shuts the connection down and fails pending calls.
func (c *Client) Close() error {
	if c.closing.Swap(true) {
		return nil
	}
	err := c.conn.Close()
	<-c.done
	return err
}

func (c *Client) readLoop() {
	defer close(c.done)
	for {
		var resp response
		if err := c.conn.ReadJSON(&resp); err != nil {
			if !c.closing.Load() {
				c.log.Warn("connection lost", zap.Error(err))
			}
			c.mu.Lock()
			c.readErr = err
			c.mu.Unlock()
			return
		}
		if resp.Type != "" && resp.Type != "response" {
			c.log.Debug("ignoring stream message", zap.String("type", resp.Type))
			continue
		}

		c.mu.Lock()
		ch, ok := c.pending[resp.ID]
		delete(c.pending, resp.ID)
		c.mu.Unlock()
		if !ok {
			c.log.Warn("unexpected response", zap.Uint64("id", resp.ID))
			continue
		}
		ch <- resp
	}
}

func (c *Client) register() (uint64, chan response) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	ch := make(chan response, 1)
	c.pending[c.nextID] = ch
	return c.nextID, ch
}

func (c *Client) forget(id uint64) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

func (c *Client) closedErr() error {
	if c.closing.Load() {
		return ErrClosed
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Errorf("connection lost: %w", c.readErr)
}

// call sends one command and decodes its result into out.
func (c *Client) call(ctx context.Context, command string, params map[string]any, out any) error {
	select {
	case <-c.done:
		return fmt.Errorf("%s: %w", command, c.closedErr())
	default:
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	id, ch := c.register()
	msg := map[string]any{"id": id, "command": command}
	for k, v := range params {
		msg[k] = v
	}

	c.writeMu.Lock()
	if deadline, ok := ctx.Deadline(); ok {
		_ = c.conn.SetWriteDeadline(deadline)
	}
	err := c.conn.WriteJSON(msg)
	c.writeMu.Unlock()
	if err != nil {
		c.forget(id)
		return fmt.Errorf("%s: write: %w", command, err)
	}
	c.log.Debug("request", zap.String("command", command), zap.Uint64("id", id))

	select {
	case resp := <-ch:
		if resp.Status == "error" || resp.Error != "" {
			return &RPCError{Command: command, Code: resp.Error, Message: resp.ErrorMessage}
		}
		if err := json.Unmarshal(resp.Result, out); err != nil {
			return fmt.Errorf("%s: decode result: %w", command, err)
		}
		return nil
	case <-ctx.Done():
		c.forget(id)
		return fmt.Errorf("%s: %w", command, ctx.Err())
	case <-c.done:
		return fmt.Errorf("%s: %w", command, c.closedErr())
	}
}

func notFound(err error, account string) error {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) && rpcErr.Code == codeAccountNotFound {
		return fmt.Errorf("%w: %s", explain.ErrAccountNotFound, account)
	}
	return err
}

// AccountInfo reads the validated account root of account.
func (c *Client) AccountInfo(ctx context.Context, account string) (*explain.AccountInfo, error) {
	var result struct {
		AccountData struct {
			Account    string `json:"Account"`
			Balance    string `json:"Balance"`
			OwnerCount uint32 `json:"OwnerCount"`
			Flags      uint32 `json:"Flags"`
		} `json:"account_data"`
	}
	params := map[string]any{"account": account, "ledger_index": "validated"}
	if err := c.call(ctx, "account_info", params, &result); err != nil {
		return nil, notFound(err, account)
	}

	balance, err := codec.DropsToNative(result.AccountData.Balance)
	if err != nil {
		return nil, fmt.Errorf("account_info: balance: %w", err)
	}
	return &explain.AccountInfo{
		Account:    result.AccountData.Account,
		Balance:    balance,
		OwnerCount: result.AccountData.OwnerCount,
		Flags:      result.AccountData.Flags,
	}, nil
}

// TrustLines reads every validated trust line of account, following markers.
func (c *Client) TrustLines(ctx context.Context, account string) ([]explain.TrustLine, error) {
	var (
		lines  []explain.TrustLine
		marker any
	)
	for {
		var result struct {
			Lines []struct {
				Account   string `json:"account"`
				Balance   string `json:"balance"`
				Currency  string `json:"currency"`
				Limit     string `json:"limit"`
				LimitPeer string `json:"limit_peer"`
			} `json:"lines"`
			Marker any `json:"marker"`
		}
		params := map[string]any{"account": account, "ledger_index": "validated", "limit": linesPageSize}
		if marker != nil {
			params["marker"] = marker
		}
		if err := c.call(ctx, "account_lines", params, &result); err != nil {
			return nil, notFound(err, account)
		}

		for _, l := range result.Lines {
			line := explain.TrustLine{Account: l.Account, Currency: l.Currency}
			var err error
			if line.Balance, err = decimal.NewFromString(l.Balance); err != nil {
				return nil, fmt.Errorf("account_lines: balance: %w", err)
			}
			if line.Limit, err = decimal.NewFromString(l.Limit); err != nil {
				return nil, fmt.Errorf("account_lines: limit: %w", err)
			}
			if line.LimitPeer, err = decimal.NewFromString(l.LimitPeer); err != nil {
				return nil, fmt.Errorf("account_lines: limit_peer: %w", err)
			}
			lines = append(lines, line)
		}

		if result.Marker == nil {
			return lines, nil
		}
		marker = result.Marker
	}
}

// Reserves reads the reserves of the last validated ledger.
func (c *Client) Reserves(ctx context.Context) (*explain.Reserves, error) {
	var result struct {
		State struct {
			ValidatedLedger *struct {
				ReserveBase uint64 `json:"reserve_base"`
				ReserveInc  uint64 `json:"reserve_inc"`
			} `json:"validated_ledger"`
		} `json:"state"`
	}
	if err := c.call(ctx, "server_state", nil, &result); err != nil {
		return nil, err
	}
	v := result.State.ValidatedLedger
	if v == nil {
		return nil, errors.New("server_state: server has no validated ledger")
	}

	base, err := codec.DropsToNative(strconv.FormatUint(v.ReserveBase, 10))
	if err != nil {
		return nil, err
	}
	inc, err := codec.DropsToNative(strconv.FormatUint(v.ReserveInc, 10))
	if err != nil {
		return nil, err
	}
	return &explain.Reserves{Base: base, Increment: inc}, nil
}
