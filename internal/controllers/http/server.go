package httpctrl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heizwerk/heizlast/internal/editor"
	"github.com/heizwerk/heizlast/internal/heatload"
	"github.com/heizwerk/heizlast/internal/model"
	"github.com/heizwerk/heizlast/internal/ports"
	"github.com/heizwerk/heizlast/internal/report"
)

type Server struct {
	svc ports.BuildingService
	srv *http.Server
	log *slog.Logger
}

// New returns a runnable server.
func New(svc ports.BuildingService, addr string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	mux := http.NewServeMux()
	s := &Server{svc: svc, log: log}

	// Read
	mux.HandleFunc("GET /v1/building", s.handleGetBuilding)
	mux.HandleFunc("GET /v1/heatload", s.handleGetHeatLoad)
	mux.HandleFunc("GET /v1/report.pdf", s.handleGetReportPDF)
	mux.HandleFunc("GET /v1/report.xlsx", s.handleGetReportXLSX)

	// Write: one endpoint per building parameter
	mux.HandleFunc("POST /v1/building/name", s.handlePostName)
	mux.HandleFunc("POST /v1/building/thermal_bridge_surcharge", s.handlePostSurcharge)
	mux.HandleFunc("POST /v1/building/outside_temperature", s.handlePostOutsideTemperature)
	mux.HandleFunc("POST /v1/building/default_room_temperature", s.handlePostDefaultRoomTemperature)

	// Write: catalogs
	mux.HandleFunc("PUT /v1/constructions", s.handlePutConstruction)
	mux.HandleFunc("DELETE /v1/constructions/{name}", s.handleDeleteConstruction)
	mux.HandleFunc("PUT /v1/temperatures", s.handlePutTemperature)
	mux.HandleFunc("DELETE /v1/temperatures/{name}", s.handleDeleteTemperature)

	// Write: rooms
	mux.HandleFunc("POST /v1/rooms", s.handlePostRoom)
	mux.HandleFunc("PUT /v1/rooms/{name}", s.handlePutRoom)
	mux.HandleFunc("DELETE /v1/rooms/{name}", s.handleDeleteRoom)

	mux.HandleFunc("POST /v1/save", s.handlePostSave)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// ---- DTOs ----

type roomResultDTO struct {
	RoomName      string                   `json:"room_name"`
	Elements      []heatload.ElementResult `json:"element_transmissions,omitempty"`
	TransmissionW float64                  `json:"transmission_w"`
	VentilationW  float64                  `json:"ventilation_w"`
	TotalW        float64                  `json:"total_w"`
	Error         string                   `json:"error,omitempty"`
}

type heatLoadDTO struct {
	BuildingName  string          `json:"building_name"`
	Rooms         []roomResultDTO `json:"rooms"`
	TransmissionW float64         `json:"transmission_w"`
	VentilationW  float64         `json:"ventilation_w"`
	TotalW        float64         `json:"total_w"`
	FailedRooms   int             `json:"failed_rooms"`
}

func toHeatLoadDTO(buildingName string, outcomes []heatload.RoomOutcome) heatLoadDTO {
	dto := heatLoadDTO{
		BuildingName: buildingName,
		Rooms:        make([]roomResultDTO, 0, len(outcomes)),
	}
	for _, o := range outcomes {
		if o.Err != nil {
			dto.Rooms = append(dto.Rooms, roomResultDTO{RoomName: o.RoomName, Error: o.Err.Error()})
			continue
		}
		dto.Rooms = append(dto.Rooms, roomResultDTO{
			RoomName:      o.RoomName,
			Elements:      o.Result.Elements,
			TransmissionW: o.Result.TransmissionTotal(),
			VentilationW:  o.Result.Ventilation,
			TotalW:        o.Result.Total(),
		})
	}
	totals := report.BuildingTotals(outcomes)
	dto.TransmissionW = totals.Transmission
	dto.VentilationW = totals.Ventilation
	dto.TotalW = totals.Total
	dto.FailedRooms = totals.Failed
	return dto
}

// ---- Handlers ----

func (s *Server) handleGetBuilding(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Snapshot())
}

func (s *Server) handleGetHeatLoad(w http.ResponseWriter, _ *http.Request) {
	outcomes, err := s.svc.HeatLoad()
	if err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toHeatLoadDTO(s.svc.Snapshot().Name, outcomes))
}

func (s *Server) handleGetReportPDF(w http.ResponseWriter, _ *http.Request) {
	outcomes, err := s.svc.HeatLoad()
	if err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="heizlast.pdf"`)
	if err := report.PDF(w, s.svc.Snapshot(), outcomes); err != nil {
		s.log.Error("pdf report failed", "error", err)
	}
}

func (s *Server) handleGetReportXLSX(w http.ResponseWriter, _ *http.Request) {
	outcomes, err := s.svc.HeatLoad()
	if err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="heizlast.xlsx"`)
	if err := report.XLSX(w, s.svc.Snapshot(), outcomes); err != nil {
		s.log.Error("xlsx report failed", "error", err)
	}
}

func (s *Server) handlePostName(w http.ResponseWriter, r *http.Request) {
	// body: {"value": "Neubau Musterweg 3"}
	postValue(s, w, r, func(v string) error {
		return s.svc.SetName(v)
	})
}

func (s *Server) handlePostSurcharge(w http.ResponseWriter, r *http.Request) {
	postValue(s, w, r, func(v float64) error {
		return s.svc.SetThermalBridgeSurcharge(v)
	})
}

func (s *Server) handlePostOutsideTemperature(w http.ResponseWriter, r *http.Request) {
	// body: {"value": "Außen"}; the name must resolve in the catalog
	postValue(s, w, r, func(v string) error {
		return s.svc.SetOutsideTemperature(v)
	})
}

func (s *Server) handlePostDefaultRoomTemperature(w http.ResponseWriter, r *http.Request) {
	postValue(s, w, r, func(v string) error {
		return s.svc.SetDefaultRoomTemperature(v)
	})
}

func (s *Server) handlePutConstruction(w http.ResponseWriter, r *http.Request) {
	var con model.Construction
	if !decodeBody(w, r, &con) {
		return
	}
	if err := s.svc.UpsertConstruction(con); err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, con)
}

func (s *Server) handleDeleteConstruction(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.RemoveConstruction(r.PathValue("name")); err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePutTemperature(w http.ResponseWriter, r *http.Request) {
	var temp model.Temperature
	if !decodeBody(w, r, &temp) {
		return
	}
	if err := s.svc.UpsertTemperature(temp); err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, temp)
}

func (s *Server) handleDeleteTemperature(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.RemoveTemperature(r.PathValue("name")); err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePostRoom(w http.ResponseWriter, r *http.Request) {
	var room model.Room
	if !decodeBody(w, r, &room) {
		return
	}
	if err := s.svc.AddRoom(room); err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (s *Server) handlePutRoom(w http.ResponseWriter, r *http.Request) {
	var room model.Room
	if !decodeBody(w, r, &room) {
		return
	}
	if err := s.svc.UpdateRoom(r.PathValue("name"), room); err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.RemoveRoom(r.PathValue("name")); err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePostSave(w http.ResponseWriter, _ *http.Request) {
	path, err := s.svc.Save()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": path})
}

// ---- generic helpers ----

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrConstructionNotFound),
		errors.Is(err, model.ErrTemperatureNotFound),
		errors.Is(err, editor.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, editor.ErrRoomExists):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func postValue[T any](s *Server, w http.ResponseWriter, r *http.Request, apply func(T) error) {
	dec := json.NewDecoder(r.Body)
	var req struct {
		Value *T `json:"value"`
	}
	if err := dec.Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Value == nil {
		writeErr(w, http.StatusBadRequest, "missing field 'value'")
		return
	}

	if err := apply(*req.Value); err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.svc.Snapshot())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
