package fetch

import "strings"

// Canonical query key builders. Keeping them in one place is what makes
// mutation invalidation reliable: a handler invalidates the same string a
// query was stored under.

func Key(parts ...string) string {
	return strings.Join(parts, "/")
}

func TuitionsKey(filterQuery string) string { return "tuitions/list" + filterQuery }

func TuitionKey(id string) string { return Key("tuitions", id) }

func MyTuitionsKey(userID string) string { return Key("tuitions", "mine", userID) }

// ApplicantsPrefix covers every viewer's cached applicant list for one
// tuition, so a new application can evict them all without a reverse index.
func ApplicantsPrefix(tuitionID string) string {
	return Key("applications", "tuition", tuitionID) + "/"
}

// ApplicantsKey carries the viewer: the backend authorizes this list per
// user, so one student's cached copy must never answer another's request.
func ApplicantsKey(viewerID, tuitionID string) string {
	return ApplicantsPrefix(tuitionID) + viewerID
}

// ApplicationKey carries the viewer for the same reason.
func ApplicationKey(viewerID, applicationID string) string {
	return Key("applications", "detail", applicationID, viewerID)
}

func MyApplicationsKey(userID string) string { return Key("applications", "mine", userID) }

func OngoingKey(role, userID string) string { return Key("ongoing", role, userID) }

func PaymentsKey(userID string) string { return Key("payments", userID) }

func ProfileKey(userID string) string { return Key("profiles", userID) }

func StatsKey(role, userID string) string { return Key("stats", role, userID) }

func AdminStatsKey() string { return "admin/stats" }

func AdminUsersKey() string { return "admin/users" }

func AdminTuitionsKey() string { return "admin/tuitions" }

func AdminTransactionsKey() string { return "admin/transactions" }

func AdminSettingsKey() string { return "admin/settings" }
