package http

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/service"
)

// upload envía un multipart con el campo "file".
func (s testServer) upload(t *testing.T, path, contentType string, size int) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="prescription.img"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(bytes.Repeat([]byte{0x89}, size)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestClinicHandlerAnalyzeReport(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(t, http.MethodPost, "/reports/analyze", map[string]any{"age": 67, "gender": 1, "blood_type": 0, "test_result": 1}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res domain.ReportAnalysis
	decode(t, rec, &res)
	if !res.AIPowered || len(res.PotentialConditions) != 3 || res.WarningFlags[0].Condition != "Advanced Age" {
		t.Fatalf("unexpected analysis %+v", res)
	}

	srv.health.Health.Available = false
	rec = srv.do(t, http.MethodPost, "/reports/analyze", map[string]any{"age": 30, "gender": 0}, "")
	decode(t, rec, &res)
	if res.AIPowered || res.ModelUsed != service.ReportFallbackModel {
		t.Fatalf("expected basic analysis, got %q", res.ModelUsed)
	}

	rec = srv.do(t, http.MethodPost, "/reports/analyze", map[string]any{"age": 30, "gender": 0, "blood_type": 9}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blood type 9, got %d", rec.Code)
	}
}

func TestClinicHandlerReportCatalog(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(t, http.MethodGet, "/reports/diseases", nil, "")
	var diseases struct {
		Diseases []domain.DiseaseInfo `json:"diseases"`
	}
	decode(t, rec, &diseases)
	if len(diseases.Diseases) != 2 {
		t.Fatalf("expected 2 diseases, got %+v", diseases)
	}

	rec = srv.do(t, http.MethodGet, "/reports/knowledge?q=artery", nil, "")
	var articles struct {
		Articles []domain.KnowledgeArticle `json:"articles"`
	}
	decode(t, rec, &articles)
	if len(articles.Articles) != 1 || articles.Articles[0].Title != "Hypertension" {
		t.Fatalf("unexpected articles %+v", articles)
	}
}

func TestClinicHandlerAnalyzePrescription(t *testing.T) {
	srv := newTestServer(t)
	cases := []struct {
		name        string
		contentType string
		size        int
		want        int
	}{
		{name: "png", contentType: "image/png", size: 4096, want: http.StatusOK},
		{name: "pdf", contentType: "application/pdf", size: 4096, want: http.StatusBadRequest},
		{name: "over 5MB", contentType: "image/jpeg", size: service.MaxPrescriptionImageBytes + 1, want: http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := srv.upload(t, "/prescriptions/analyze", tc.contentType, tc.size)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
			if tc.want != http.StatusOK {
				return
			}
			var res domain.PrescriptionAnalysis
			decode(t, rec, &res)
			if len(res.Medications) == 0 || len(res.Diagnoses) == 0 || res.AIAnalysis.ModelUsed == "" {
				t.Fatalf("unexpected reading %+v", res)
			}
		})
	}

	rec := srv.do(t, http.MethodPost, "/prescriptions/analyze", nil, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without file, got %d", rec.Code)
	}
}

func TestClinicHandlerDoctors(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(t, http.MethodGet, "/doctors?specialty=Infectious+Disease&location=Camp", nil, "")
	var resp struct {
		Doctors     []domain.Doctor `json:"doctors"`
		Specialties []string        `json:"specialties"`
	}
	decode(t, rec, &resp)
	if len(resp.Doctors) != 1 || resp.Doctors[0].Name != "Dr. Sarita Nair" || len(resp.Specialties) != 5 {
		t.Fatalf("unexpected directory response %+v", resp)
	}

	if rec := srv.do(t, http.MethodGet, "/doctors/1", nil, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := srv.do(t, http.MethodGet, "/doctors/nope", nil, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestClinicHandlerAppointments(t *testing.T) {
	srv := newTestServer(t)
	token := srv.signIn(t)
	date := time.Now().UTC().AddDate(0, 0, 3).Format(time.DateOnly)

	if rec := srv.do(t, http.MethodGet, "/appointments", nil, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	body := map[string]string{"doctor_id": "11", "date": date, "time": "04:30 PM", "type": "video"}
	rec := srv.do(t, http.MethodPost, "/appointments", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var booked struct {
		Appointment domain.Appointment `json:"appointment"`
	}
	decode(t, rec, &booked)
	if booked.Appointment.Specialty != "ENT Specialist" {
		t.Fatalf("expected specialty from doctor, got %+v", booked.Appointment)
	}

	if rec := srv.do(t, http.MethodPost, "/appointments", body, token); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for the same slot, got %d", rec.Code)
	}
	bad := map[string]string{"specialty": "Urology", "date": "10/04/2025", "time": "09:00 AM"}
	if rec := srv.do(t, http.MethodPost, "/appointments", bad, token); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", rec.Code)
	}

	rec = srv.do(t, http.MethodPost, fmt.Sprintf("/appointments/%s/cancel", booked.Appointment.ID), nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = srv.do(t, http.MethodGet, "/appointments", nil, token)
	var list struct {
		Upcoming []domain.Appointment `json:"upcoming"`
		Past     []domain.Appointment `json:"past"`
	}
	decode(t, rec, &list)
	if len(list.Upcoming) != 0 || len(list.Past) != 1 || list.Past[0].Status != domain.AppointmentCancelled {
		t.Fatalf("unexpected appointments %+v", list)
	}
}
