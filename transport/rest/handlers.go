package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
)

const qrSize = 320

type createRoomRequest struct {
	Name string `json:"name"`
}

type listRoomsResponse struct {
	Rooms []string `json:"rooms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) ping(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Warn("failed to write pong", "error", err)
	}
}

func (that *Server) createRoom(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log := that.logger.With("method", "createRoom")

	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	gameRoom, err := that.rooms.Create(req.Name)
	switch {
	case errors.Is(err, apperror.ErrInvalidRoomName):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case errors.Is(err, apperror.ErrRoomAlreadyExists):
		that.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
		return
	case err != nil:
		log.Error("failed to create room", "room", req.Name, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})

		return
	}

	log.Info("room created", "room", gameRoom.Name())

	that.writeJSON(w, http.StatusCreated, gameRoom.Snapshot())
}

func (that *Server) listRooms(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	names := that.rooms.Names()
	if names == nil {
		names = []string{}
	}

	that.writeJSON(w, http.StatusOK, listRoomsResponse{Rooms: names})
}

func (that *Server) getRoom(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	gameRoom, err := that.rooms.Get(ps.ByName("name"))
	if err != nil {
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	that.writeJSON(w, http.StatusOK, gameRoom.Snapshot())
}

// roomQR renders a PNG QR code that links to the room page.
func (that *Server) roomQR(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	gameRoom, err := that.rooms.Get(ps.ByName("name"))
	if err != nil {
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	link := strings.TrimRight(that.publicURL, "/") + "/rooms/" + url.PathEscape(gameRoom.Name())

	png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
	if err != nil {
		that.logger.Error("failed to encode qr code", "room", gameRoom.Name(), "error", err)
		http.Error(w, "qr generation failed", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Warn("failed to write response", "error", err)
	}
}
