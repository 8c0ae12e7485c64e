package dev

import (
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/skooma-dev/skooma/internal/errors"
)

// ReloadPath is the websocket endpoint browsers connect to. Pages pass the
// document they show as the "document" query parameter; the index page
// passes none.
const ReloadPath = "/_skooma/reload"

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeCSS   ReloadMessageType = "css"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers via WebSocket.
type ReloadMessage struct {
	Type ReloadMessageType `json:"type"`

	// Document is the tree document a reload or error concerns. Empty
	// means every page.
	Document string `json:"document,omitempty"`

	// File is the stylesheet that changed, for css messages.
	File string `json:"file,omitempty"`

	// Error describes a failed build, for error messages.
	Error *BuildError `json:"error,omitempty"`
}

// BuildError is a build failure as shown by the browser overlay.
type BuildError struct {
	Document   string `json:"document"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	Cause      string `json:"cause,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	File       string `json:"file,omitempty"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`

	// Context holds the source lines around Line, starting at FirstLine.
	Context   []string `json:"context,omitempty"`
	FirstLine int      `json:"firstLine,omitempty"`
}

// NewBuildError describes err, the failed build of document. Coded errors
// contribute their code, location and suggestion.
func NewBuildError(document string, err error) *BuildError {
	be := &BuildError{Document: document, Message: err.Error()}

	var se *errors.SkoomaError
	if !stderrors.As(err, &se) {
		return be
	}
	be.Code = se.Code
	be.Message = se.Message
	be.Detail = se.Detail
	if se.Wrapped != nil {
		be.Cause = se.Wrapped.Error()
	}
	be.Suggestion = se.Suggestion
	if loc := se.Location; loc != nil {
		be.File, be.Line, be.Column = loc.File, loc.Line, loc.Column
		if len(se.Context) > 0 {
			be.Context = se.Context
			be.FirstLine = max(1, loc.Line-2)
		}
	}
	return be
}

// reloadClient is one connected page.
type reloadClient struct {
	conn     *websocket.Conn
	document string

	// writeMu serializes writes; a websocket allows one writer at a time.
	writeMu sync.Mutex
}

// wants reports whether the page should receive a message about document.
// The index page lists every document and receives everything.
func (c *reloadClient) wants(document string) bool {
	return document == "" || c.document == "" || c.document == document
}

func (c *reloadClient) send(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// ReloadServer manages WebSocket connections for hot reload.
type ReloadServer struct {
	clients  map[*websocket.Conn]*reloadClient
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger

	// onClients is called with the client count whenever it changes.
	onClients func(int)
}

// NewReloadServer creates a new reload server. onClients may be nil.
func NewReloadServer(logger *slog.Logger, onClients func(int)) *ReloadServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadServer{
		clients: make(map[*websocket.Conn]*reloadClient),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // preview only
			},
		},
		logger:    logger,
		onClients: onClients,
	}
}

// HandleWebSocket upgrades the request and keeps the page registered until
// it disconnects.
func (r *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Debug("reload upgrade failed", "error", err)
		return
	}

	client := &reloadClient{conn: conn, document: req.URL.Query().Get("document")}
	r.mu.Lock()
	r.clients[conn] = client
	count := len(r.clients)
	r.mu.Unlock()
	r.clientsChanged(count)
	r.logger.Debug("reload client connected", "document", client.document, "clients", count)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	r.remove(conn)
}

// NotifyReload reloads the pages showing one of documents, plus the index.
// Without documents every page reloads.
func (r *ReloadServer) NotifyReload(documents ...string) {
	if len(documents) == 0 {
		r.broadcast(ReloadMessage{Type: ReloadTypeFull})
		return
	}
	for _, doc := range documents {
		r.broadcast(ReloadMessage{Type: ReloadTypeFull, Document: doc})
	}
}

// NotifyCSS asks every page to refetch its stylesheets.
func (r *ReloadServer) NotifyCSS(file string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeCSS, File: file})
}

// NotifyError shows the build error overlay on the pages it concerns.
func (r *ReloadServer) NotifyError(be *BuildError) {
	r.broadcast(ReloadMessage{Type: ReloadTypeError, Document: be.Document, Error: be})
}

// ClearError removes the error overlay from every page.
func (r *ReloadServer) ClearError() {
	r.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

// broadcast sends msg to the clients that want it.
func (r *ReloadServer) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		r.logger.Error("cannot encode reload message", "error", err)
		return
	}

	r.mu.RLock()
	targets := make([]*reloadClient, 0, len(r.clients))
	for _, c := range r.clients {
		if c.wants(msg.Document) {
			targets = append(targets, c)
		}
	}
	r.mu.RUnlock()

	for _, c := range targets {
		if err := c.send(data); err != nil {
			r.remove(c.conn)
		}
	}
}

func (r *ReloadServer) remove(conn *websocket.Conn) {
	r.mu.Lock()
	_, ok := r.clients[conn]
	delete(r.clients, conn)
	count := len(r.clients)
	r.mu.Unlock()

	conn.Close()
	if ok {
		r.clientsChanged(count)
	}
}

func (r *ReloadServer) clientsChanged(count int) {
	if r.onClients != nil {
		r.onClients(count)
	}
}

// ClientCount returns the number of connected clients.
func (r *ReloadServer) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close closes all client connections.
func (r *ReloadServer) Close() {
	r.mu.Lock()
	for conn := range r.clients {
		conn.Close()
		delete(r.clients, conn)
	}
	r.mu.Unlock()
	r.clientsChanged(0)
}

//go:embed reload.js
var reloadJS string

// DevClientScript is the live reload client injected into preview pages.
var DevClientScript = "<script>\n" + reloadJS + "</script>"
