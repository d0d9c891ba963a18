package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/clinicdesk/clinic-service/internal/appointment"
	"github.com/clinicdesk/clinic-service/internal/auth"
	"github.com/clinicdesk/clinic-service/internal/config"
	"github.com/clinicdesk/clinic-service/internal/dashboard"
	"github.com/clinicdesk/clinic-service/internal/medicalrecord"
	"github.com/clinicdesk/clinic-service/internal/messaging"
	"github.com/clinicdesk/clinic-service/internal/patient"
	"github.com/clinicdesk/clinic-service/internal/telemetry"
	"github.com/clinicdesk/clinic-service/internal/users"
)

// SetupRouter initializes all routes for the application
func SetupRouter(db *sql.DB, cfg config.Config, publisher messaging.PublisherInterface, metrics *telemetry.Metrics) *mux.Router {
	// Initialize user and session components
	userRepo := users.NewRepository(db)
	userService := users.NewService(userRepo)
	sessionStore := auth.NewStore(db, cfg.SessionTTL())

	// A nil *Metrics must stay a nil interface inside the consuming
	// packages.
	var loginMetrics auth.LoginMetricsRecorder
	var authMetrics auth.MetricsRecorder
	var patientMetrics patient.OperationMetricsRecorder
	var appointmentMetrics appointment.OperationMetricsRecorder
	var recordMetrics medicalrecord.OperationMetricsRecorder
	if metrics != nil {
		loginMetrics = metrics
		authMetrics = metrics
		patientMetrics = metrics
		appointmentMetrics = metrics
		recordMetrics = metrics
	}
	authHandler := auth.NewHandler(userService, sessionStore, cfg.Session.CookieName, loginMetrics)

	// Initialize patient components
	patientRepo := patient.NewRepository(db)
	patientService := patient.NewService(patientRepo, publisher, patientMetrics)
	patientHandler := patient.NewHandler(patientService)

	// Initialize appointment components
	appointmentRepo := appointment.NewRepository(db)
	appointmentService := appointment.NewService(appointmentRepo, publisher, appointmentMetrics)
	appointmentHandler := appointment.NewHandler(appointmentService)

	// Initialize medical record components
	recordRepo := medicalrecord.NewRepository(db)
	recordService := medicalrecord.NewService(recordRepo, publisher, recordMetrics)
	recordHandler := medicalrecord.NewHandler(recordService)

	// Initialize dashboard components
	dashboardRepo := dashboard.NewRepository(db)
	dashboardService := dashboard.NewService(dashboardRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	authenticated := auth.MiddlewareWithMetrics(sessionStore, cfg.Session.CookieName, authMetrics)

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("clinic-service"))
	if metrics != nil {
		r.Use(MetricsMiddleware(metrics))
	}

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"clinic-service"}`))
	}).Methods("GET")

	// Auth routes; login is the only public API endpoint
	r.Handle("/api/auth/login", http.HandlerFunc(authHandler.Login)).Methods("POST")
	r.Handle("/api/auth/logout", authenticated(http.HandlerFunc(authHandler.Logout))).Methods("POST")
	r.Handle("/api/auth/user", authenticated(http.HandlerFunc(authHandler.CurrentUser))).Methods("GET")

	// Dashboard routes
	r.Handle("/api/dashboard/stats", authenticated(http.HandlerFunc(dashboardHandler.Stats))).Methods("GET")

	// Patient routes
	r.Handle("/api/patients", authenticated(http.HandlerFunc(patientHandler.List))).Methods("GET")
	r.Handle("/api/patients", authenticated(http.HandlerFunc(patientHandler.Create))).Methods("POST")
	r.Handle("/api/patients/{id}", authenticated(http.HandlerFunc(patientHandler.Get))).Methods("GET")
	r.Handle("/api/patients/{id}", authenticated(http.HandlerFunc(patientHandler.Update))).Methods("PUT")
	r.Handle("/api/patients/{id}", authenticated(http.HandlerFunc(patientHandler.Delete))).Methods("DELETE")

	// Medical record routes; history is read through the owning patient
	r.Handle("/api/patients/{patientId}/medical-records",
		authenticated(http.HandlerFunc(recordHandler.ListByPatient))).Methods("GET")
	r.Handle("/api/medical-records", authenticated(http.HandlerFunc(recordHandler.Create))).Methods("POST")

	// Appointment routes
	r.Handle("/api/appointments", authenticated(http.HandlerFunc(appointmentHandler.List))).Methods("GET")
	r.Handle("/api/appointments", authenticated(http.HandlerFunc(appointmentHandler.Create))).Methods("POST")
	r.Handle("/api/appointments/{id}", authenticated(http.HandlerFunc(appointmentHandler.Get))).Methods("GET")
	r.Handle("/api/appointments/{id}", authenticated(http.HandlerFunc(appointmentHandler.Update))).Methods("PUT")
	r.Handle("/api/appointments/{id}", authenticated(http.HandlerFunc(appointmentHandler.Delete))).Methods("DELETE")

	return r
}
