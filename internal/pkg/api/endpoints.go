package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/etuitionbd/webclient/internal/app/models"
)

// Typed wrappers over Do, one per backend operation. Paths mirror the
// backend's REST surface; the structs below are the request payloads it
// accepts.

// AuthResult is the backend's answer to any successful authentication.
type AuthResult struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"_id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		PhotoURL string `json:"photoUrl,omitempty"`
	} `json:"user"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// SocialLoginInput federates a provider-verified identity to the backend,
// which creates the account on first sight and returns its own token.
type SocialLoginInput struct {
	Provider string `json:"provider"`
	IDToken  string `json:"idToken"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var out AuthResult
	if err := c.Do(ctx, nil, http.MethodPost, "/auth/login", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	var out AuthResult
	if err := c.Do(ctx, nil, http.MethodPost, "/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SocialLogin(ctx context.Context, in SocialLoginInput) (*AuthResult, error) {
	var out AuthResult
	if err := c.Do(ctx, nil, http.MethodPost, "/auth/social", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TuitionFilter narrows the public tuition listing. Zero values are omitted
// from the query string.
type TuitionFilter struct {
	Class    string
	Subject  string
	Location string
	Medium   string
}

// Query renders the filter as a URL query string, empty when unset. The
// fetch layer reuses it as part of the cache key.
func (f TuitionFilter) Query() string {
	q := url.Values{}
	if f.Class != "" {
		q.Set("class", f.Class)
	}
	if f.Subject != "" {
		q.Set("subject", f.Subject)
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.Medium != "" {
		q.Set("medium", f.Medium)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *Client) ListTuitions(ctx context.Context, sess *models.Session, filter TuitionFilter) ([]models.TuitionPost, error) {
	var out []models.TuitionPost
	if err := c.Do(ctx, sess, http.MethodGet, "/tuitions"+filter.Query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTuition(ctx context.Context, sess *models.Session, id string) (*models.TuitionPost, error) {
	var out models.TuitionPost
	if err := c.Do(ctx, sess, http.MethodGet, "/tuitions/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type CreateTuitionInput struct {
	Title        string   `json:"title"`
	Class        string   `json:"class"`
	Subjects     []string `json:"subjects"`
	Medium       string   `json:"medium"`
	Location     string   `json:"location"`
	DaysPerWeek  int      `json:"daysPerWeek"`
	SalaryTk     int64    `json:"salary"`
	Requirements string   `json:"requirements,omitempty"`
}

func (c *Client) CreateTuition(ctx context.Context, sess *models.Session, in CreateTuitionInput) (*models.TuitionPost, error) {
	var out models.TuitionPost
	if err := c.Do(ctx, sess, http.MethodPost, "/tuitions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyTuitions(ctx context.Context, sess *models.Session) ([]models.TuitionPost, error) {
	var out []models.TuitionPost
	if err := c.Do(ctx, sess, http.MethodGet, "/tuitions/mine", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type ApplyInput struct {
	ExpectedSalaryTk int64  `json:"expectedSalary"`
	Message          string `json:"message,omitempty"`
}

func (c *Client) Apply(ctx context.Context, sess *models.Session, tuitionID string, in ApplyInput) (*models.Application, error) {
	var out models.Application
	if err := c.Do(ctx, sess, http.MethodPost, "/tuitions/"+url.PathEscape(tuitionID)+"/applications", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListApplicants(ctx context.Context, sess *models.Session, tuitionID string) ([]models.Application, error) {
	var out []models.Application
	if err := c.Do(ctx, sess, http.MethodGet, "/tuitions/"+url.PathEscape(tuitionID)+"/applications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetApplication(ctx context.Context, sess *models.Session, applicationID string) (*models.Application, error) {
	var out models.Application
	if err := c.Do(ctx, sess, http.MethodGet, "/applications/"+url.PathEscape(applicationID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyApplications(ctx context.Context, sess *models.Session) ([]models.Application, error) {
	var out []models.Application
	if err := c.Do(ctx, sess, http.MethodGet, "/applications/mine", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ShortlistApplication(ctx context.Context, sess *models.Session, applicationID string) error {
	return c.Do(ctx, sess, http.MethodPatch, "/applications/"+url.PathEscape(applicationID)+"/shortlist", nil, nil)
}

func (c *Client) RejectApplication(ctx context.Context, sess *models.Session, applicationID string) error {
	return c.Do(ctx, sess, http.MethodPatch, "/applications/"+url.PathEscape(applicationID)+"/reject", nil, nil)
}

// HireInput completes a hire after the checkout flow settled. Only the
// payment reference crosses to the backend; card data never does.
type HireInput struct {
	PaymentRef string `json:"paymentRef"`
	AmountTk   int64  `json:"amount"`
	Currency   string `json:"currency"`
}

func (c *Client) Hire(ctx context.Context, sess *models.Session, applicationID string, in HireInput) (*models.OngoingTuition, error) {
	var out models.OngoingTuition
	if err := c.Do(ctx, sess, http.MethodPost, "/applications/"+url.PathEscape(applicationID)+"/hire", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StudentOngoing(ctx context.Context, sess *models.Session) ([]models.OngoingTuition, error) {
	var out []models.OngoingTuition
	if err := c.Do(ctx, sess, http.MethodGet, "/ongoing/student", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TutorOngoing(ctx context.Context, sess *models.Session) ([]models.OngoingTuition, error) {
	var out []models.OngoingTuition
	if err := c.Do(ctx, sess, http.MethodGet, "/ongoing/tutor", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MyPayments(ctx context.Context, sess *models.Session) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := c.Do(ctx, sess, http.MethodGet, "/payments/mine", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTutorProfile(ctx context.Context, sess *models.Session) (*models.TutorProfile, error) {
	var out models.TutorProfile
	if err := c.Do(ctx, sess, http.MethodGet, "/profiles/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type UpdateProfileInput struct {
	Name          string   `json:"name,omitempty"`
	PhotoURL      string   `json:"photoUrl,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Institution   string   `json:"institution,omitempty"`
	Department    string   `json:"department,omitempty"`
	Qualification string   `json:"qualification,omitempty"`
	Experience    string   `json:"experience,omitempty"`
	Subjects      []string `json:"subjects,omitempty"`
	Location      string   `json:"location,omitempty"`
	HourlyRateTk  int64    `json:"hourlyRate,omitempty"`
}

func (c *Client) UpdateTutorProfile(ctx context.Context, sess *models.Session, in UpdateProfileInput) (*models.TutorProfile, error) {
	var out models.TutorProfile
	if err := c.Do(ctx, sess, http.MethodPut, "/profiles/me", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StudentStats(ctx context.Context, sess *models.Session) (*models.StudentStats, error) {
	var out models.StudentStats
	if err := c.Do(ctx, sess, http.MethodGet, "/stats/student", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TutorStats(ctx context.Context, sess *models.Session) (*models.TutorStats, error) {
	var out models.TutorStats
	if err := c.Do(ctx, sess, http.MethodGet, "/stats/tutor", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPlatformSettings reads the public platform configuration, used to show
// the service fee during checkout.
func (c *Client) GetPlatformSettings(ctx context.Context, sess *models.Session) (*models.PlatformSettings, error) {
	var out models.PlatformSettings
	if err := c.Do(ctx, sess, http.MethodGet, "/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Admin surface.

func (c *Client) AdminStats(ctx context.Context, sess *models.Session) (*models.AdminStats, error) {
	var out models.AdminStats
	if err := c.Do(ctx, sess, http.MethodGet, "/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminListUsers(ctx context.Context, sess *models.Session) ([]models.User, error) {
	var out []models.User
	if err := c.Do(ctx, sess, http.MethodGet, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminDeleteUser(ctx context.Context, sess *models.Session, userID string) error {
	return c.Do(ctx, sess, http.MethodDelete, "/admin/users/"+url.PathEscape(userID), nil, nil)
}

func (c *Client) AdminListTuitions(ctx context.Context, sess *models.Session) ([]models.TuitionPost, error) {
	var out []models.TuitionPost
	if err := c.Do(ctx, sess, http.MethodGet, "/admin/tuitions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminSetTuitionStatus(ctx context.Context, sess *models.Session, tuitionID string, status models.TuitionStatus) error {
	payload := map[string]string{"status": string(status)}
	return c.Do(ctx, sess, http.MethodPatch, "/admin/tuitions/"+url.PathEscape(tuitionID)+"/status", payload, nil)
}

func (c *Client) AdminListTransactions(ctx context.Context, sess *models.Session) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := c.Do(ctx, sess, http.MethodGet, "/admin/transactions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminGetSettings(ctx context.Context, sess *models.Session) (*models.PlatformSettings, error) {
	var out models.PlatformSettings
	if err := c.Do(ctx, sess, http.MethodGet, "/admin/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateSettings(ctx context.Context, sess *models.Session, in models.PlatformSettings) (*models.PlatformSettings, error) {
	var out models.PlatformSettings
	if err := c.Do(ctx, sess, http.MethodPut, "/admin/settings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
