package ui

func init() {
	for name, content := range tutorTemplates {
		templates[name] = content
	}
}

var tutorTemplates = map[string]string{
	"tutor/dashboard": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="mb-8">
        <h1 class="text-2xl font-semibold text-gray-900">Dashboard</h1>
        <p class="mt-1 text-sm text-gray-500">Welcome back, {{.Session.Name}}</p>
    </div>

    <div class="grid grid-cols-1 gap-5 sm:grid-cols-2 lg:grid-cols-4 mb-8">
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Applications Sent</dt>
            <dd class="mt-1 text-lg font-semibold text-gray-900">{{.Stats.ApplicationsSent}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Pending</dt>
            <dd class="mt-1 text-lg font-semibold text-yellow-600">{{.Stats.PendingApplications}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Ongoing Tuitions</dt>
            <dd class="mt-1 text-lg font-semibold text-blue-600">{{.Stats.OngoingTuitions}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Total Earned</dt>
            <dd class="mt-1 text-lg font-semibold text-gray-900">{{formatTk .Stats.TotalEarnedTk}}</dd>
        </div>
    </div>

    {{if not .ProfileComplete}}
    <div class="rounded-md bg-yellow-50 p-4 mb-6 text-sm text-yellow-700">
        Your tutor profile is incomplete. Students see your profile when you apply.
        <a href="/tutor/profile" class="font-medium underline">Complete it now</a>.
    </div>
    {{end}}

    <a href="/tutor/tuitions" class="inline-flex items-center px-4 py-2 border border-transparent text-sm font-medium rounded-md shadow-sm text-white bg-emerald-600 hover:bg-emerald-700">
        Browse open tuitions
    </a>
</div>
{{end}}`,

	"tutor/applications": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">My Applications</h1>
    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <ul class="divide-y divide-gray-200">
            {{range .Applications}}
            <li class="px-4 py-4 sm:px-6">
                <div class="flex items-center justify-between">
                    <div>
                        <a href="/tutor/tuitions/{{.TuitionID}}" class="text-sm font-medium text-emerald-600 hover:text-emerald-500">{{.TuitionTitle}}</a>
                        <p class="mt-1 text-sm text-gray-500">Expected {{formatTk .ExpectedSalaryTk}}/mo &middot; applied {{formatDate .CreatedAt}}</p>
                    </div>
                    <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{statusBadge (printf "%s" .Status)}}">{{.Status}}</span>
                </div>
            </li>
            {{else}}
            <li class="px-4 py-8 text-center text-gray-500">
                You have not applied to any tuitions yet.
                <a href="/tutor/tuitions" class="text-emerald-600 hover:text-emerald-500">Browse open tuitions</a>
            </li>
            {{end}}
        </ul>
    </div>
</div>
{{end}}`,

	"tutor/ongoing": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Ongoing Tuitions</h1>
    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <ul class="divide-y divide-gray-200">
            {{range .Ongoing}}
            <li class="px-4 py-4 sm:px-6">
                <div class="flex items-center justify-between">
                    <div>
                        <p class="text-sm font-medium text-gray-900">{{.TuitionTitle}}</p>
                        <p class="mt-1 text-sm text-gray-500">Student: {{.StudentName}} &middot; {{formatTk .MonthlySalaryTk}}/mo &middot; started {{formatDate .StartedAt}}</p>
                    </div>
                    <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{statusBadge .Status}}">{{.Status}}</span>
                </div>
            </li>
            {{else}}
            <li class="px-4 py-8 text-center text-gray-500">No ongoing tuitions yet.</li>
            {{end}}
        </ul>
    </div>
</div>
{{end}}`,

	"tutor/profile": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-2xl mx-auto">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">My Profile</h1>
    <form action="/tutor/profile" method="POST" class="bg-white shadow sm:rounded-lg px-4 py-5 sm:p-6 space-y-4">
        <div class="grid grid-cols-2 gap-4">
            <div>
                <label for="name" class="block text-sm font-medium text-gray-700">Full name</label>
                <input type="text" id="name" name="name" required value="{{.Profile.Name}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
            </div>
            <div>
                <label for="photo_url" class="block text-sm font-medium text-gray-700">Photo URL</label>
                <input type="url" id="photo_url" name="photo_url" value="{{.Profile.PhotoURL}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm"
                       placeholder="https://...">
            </div>
        </div>
        <div class="grid grid-cols-2 gap-4">
            <div>
                <label for="phone" class="block text-sm font-medium text-gray-700">Phone</label>
                <input type="tel" id="phone" name="phone" value="{{.Profile.Phone}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
            </div>
            <div>
                <label for="location" class="block text-sm font-medium text-gray-700">Location</label>
                <input type="text" id="location" name="location" value="{{.Profile.Location}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
            </div>
        </div>
        <div class="grid grid-cols-2 gap-4">
            <div>
                <label for="institution" class="block text-sm font-medium text-gray-700">Institution</label>
                <input type="text" id="institution" name="institution" value="{{.Profile.Institution}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm"
                       placeholder="e.g. BUET">
            </div>
            <div>
                <label for="department" class="block text-sm font-medium text-gray-700">Department</label>
                <input type="text" id="department" name="department" value="{{.Profile.Department}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
            </div>
        </div>
        <div>
            <label for="qualification" class="block text-sm font-medium text-gray-700">Qualification</label>
            <input type="text" id="qualification" name="qualification" value="{{.Profile.Qualification}}"
                   class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm"
                   placeholder="e.g. BSc in EEE (3rd year)">
        </div>
        <div>
            <label for="experience" class="block text-sm font-medium text-gray-700">Experience</label>
            <textarea id="experience" name="experience" rows="3"
                      class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">{{.Profile.Experience}}</textarea>
        </div>
        <div class="grid grid-cols-3 gap-4">
            <div class="col-span-2">
                <label for="subjects" class="block text-sm font-medium text-gray-700">Subjects (comma separated)</label>
                <input type="text" id="subjects" name="subjects" value="{{joinSubjects .Profile.Subjects}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
            </div>
            <div>
                <label for="hourly_rate" class="block text-sm font-medium text-gray-700">Hourly rate (Tk)</label>
                <input type="number" id="hourly_rate" name="hourly_rate" min="0" value="{{.Profile.HourlyRateTk}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
            </div>
        </div>
        <div class="pt-2 flex items-center justify-between">
            {{if .Profile.Verified}}
            <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium bg-green-100 text-green-800">Verified tutor</span>
            {{else}}
            <span class="text-sm text-gray-500">Verification pending</span>
            {{end}}
            <button type="submit"
                    class="inline-flex items-center px-4 py-2 border border-transparent text-sm font-medium rounded-md shadow-sm text-white bg-emerald-600 hover:bg-emerald-700">
                Save profile
            </button>
        </div>
    </form>
</div>
{{end}}`,
}
