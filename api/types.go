package api

import "github.com/lookbusy1344/arm-disassembler/service"

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// DecodeRequest asks for a single instruction word to be rendered.
type DecodeRequest struct {
	Word    uint32 `json:"word"`
	Mode    string `json:"mode"`    // "arm" or "thumb"
	Profile string `json:"profile"` // "v4t", "v5te", "v6"
}

// DecodeResponse is the rendering of a single DecodeRequest.
type DecodeResponse struct {
	Mnemonic   string `json:"mnemonic"`
	Recognized bool   `json:"recognized"`
	Halfwords  int    `json:"halfwords"`
}

// SessionCreateRequest uploads a byte range to be decoded as a session.
type SessionCreateRequest struct {
	DataBase64 string `json:"dataBase64"`
	Base       uint64 `json:"base"`
	Mode       string `json:"mode"`
	Profile    string `json:"profile"`
}

// SessionCreateResponse reports the newly created session's ID.
type SessionCreateResponse struct {
	SessionID string `json:"sessionId"`
}

// SessionStatusResponse reports a session's decode progress.
type SessionStatusResponse struct {
	SessionID     string `json:"sessionId"`
	Done          bool   `json:"done"`
	EntryCount    int    `json:"entryCount"`
	NotRecognized uint64 `json:"notRecognized"`
}

// SessionEntriesResponse returns the decoded entries for a session.
type SessionEntriesResponse struct {
	SessionID string          `json:"sessionId"`
	Entries   []service.Entry `json:"entries"`
}
