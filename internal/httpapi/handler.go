package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"employees-api/internal/apperror"
	"employees-api/internal/service"
)

type Handler struct {
	service service.Manager
	logger  *log.Logger
}

func NewHandler(svc service.Manager, logger *log.Logger) *Handler {
	return &Handler{
		service: svc,
		logger:  logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 2 || parts[0] != "api" {
		writeError(w, http.StatusNotFound, "route not found")
		return
	}

	switch {
	case len(parts) == 2 && parts[1] == "stats":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleStats(w, r)
		return

	case len(parts) == 2 && parts[1] == "employees":
		switch r.Method {
		case http.MethodGet:
			h.handleListEmployees(w, r)
		case http.MethodPost:
			h.handleCreateEmployee(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return

	case len(parts) == 3 && parts[1] == "employees":
		switch r.Method {
		case http.MethodGet, http.MethodPut, http.MethodDelete:
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		employeeID, err := parseID(parts[2])
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid employee id")
			return
		}

		switch r.Method {
		case http.MethodGet:
			h.handleGetEmployee(w, r, employeeID)
		case http.MethodPut:
			h.handleUpdateEmployee(w, r, employeeID)
		case http.MethodDelete:
			h.handleDeleteEmployee(w, r, employeeID)
		}
		return
	}

	writeError(w, http.StatusNotFound, "route not found")
}

type employeeRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	Salary     *float64 `json:"salary"`
	HireDate   string   `json:"hire_date"`
	Phone      *string  `json:"phone"`
}

func (req employeeRequest) toInput() service.EmployeeInput {
	return service.EmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
		HireDate:   req.HireDate,
		Phone:      req.Phone,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.ListEmployees(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]service.EmployeeDTO{
		"employees": employees,
	})
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request, employeeID int64) {
	employee, err := h.service.GetEmployee(r.Context(), employeeID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]service.EmployeeDTO{
		"employee": employee,
	})
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.CreateEmployee(r.Context(), req.toInput())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createdResponse{
		Message: "Employee created successfully",
		ID:      id,
	})
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request, employeeID int64) {
	var req employeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.UpdateEmployee(r.Context(), employeeID, req.toInput()); err != nil {
		h.respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Employee updated successfully"})
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request, employeeID int64) {
	if err := h.service.DeleteEmployee(r.Context(), employeeID); err != nil {
		h.respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Employee deleted successfully"})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) respondWithError(w http.ResponseWriter, err error) {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		var appErr *apperror.Error
		if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
			writeJSON(w, http.StatusBadRequest, validationResponse{
				Error:  appErr.Message,
				Fields: appErr.Fields,
			})
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
	case apperror.CodeNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case apperror.CodeConflict:
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Printf("unexpected error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads exactly one JSON value. Unknown fields are ignored so
// clients may send back whole records, id and created_at included.
func decodeJSON(r *http.Request, target interface{}) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return errors.New("invalid JSON body")
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return errors.New("invalid JSON body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
