package ui

func init() {
	for name, content := range adminTemplates {
		templates[name] = content
	}
}

var adminTemplates = map[string]string{
	"admin/dashboard": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-8">Platform Overview</h1>

    <div class="grid grid-cols-1 gap-5 sm:grid-cols-2 lg:grid-cols-4 mb-8">
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Total Users</dt>
            <dd class="mt-1 text-lg font-semibold text-gray-900">{{.Stats.TotalUsers}}</dd>
            <p class="mt-1 text-xs text-gray-500">{{.Stats.TotalStudents}} students, {{.Stats.TotalTutors}} tutors</p>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Tuitions</dt>
            <dd class="mt-1 text-lg font-semibold text-gray-900">{{.Stats.TotalTuitions}}</dd>
            <p class="mt-1 text-xs text-yellow-600">{{.Stats.PendingTuitions}} awaiting review</p>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Transactions</dt>
            <dd class="mt-1 text-lg font-semibold text-gray-900">{{.Stats.TotalTransactions}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Revenue</dt>
            <dd class="mt-1 text-lg font-semibold text-gray-900">{{formatTk .Stats.RevenueTk}}</dd>
        </div>
    </div>

    {{if gt .Stats.PendingTuitions 0}}
    <a href="/admin/tuitions" class="inline-flex items-center px-4 py-2 border border-transparent text-sm font-medium rounded-md shadow-sm text-white bg-emerald-600 hover:bg-emerald-700">
        Review pending tuitions
    </a>
    {{end}}
</div>
{{end}}`,

	"admin/users": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Users</h1>
    <div class="bg-white shadow overflow-hidden sm:rounded-lg">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Name</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Email</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Role</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Joined</th>
                    <th class="px-6 py-3"></th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Users}}
                <tr>
                    <td class="px-6 py-4 whitespace-nowrap text-sm font-medium text-gray-900">{{.Name}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{.Email}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{.Role}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{formatDate .CreatedAt}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-right">
                        {{if ne (printf "%s" .Role) "admin"}}
                        <form action="/admin/users/{{.ID}}/delete" method="POST" onsubmit="return confirm('Remove this user?')">
                            <button type="submit" class="text-sm text-red-600 hover:text-red-500">Remove</button>
                        </form>
                        {{end}}
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="5" class="px-6 py-8 text-center text-sm text-gray-500">No users.</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>
</div>
{{end}}`,

	"admin/tuitions": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Tuition Moderation</h1>
    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <ul class="divide-y divide-gray-200">
            {{range .Tuitions}}
            <li class="px-4 py-4 sm:px-6">
                <div class="flex items-center justify-between">
                    <div>
                        <p class="text-sm font-medium text-gray-900">{{.Title}}</p>
                        <p class="mt-1 text-sm text-gray-500">{{.StudentName}} &middot; Class {{.Class}} &middot; {{.Location}} &middot; {{formatTk .SalaryTk}}/mo</p>
                    </div>
                    <div class="flex items-center space-x-2">
                        <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{statusBadge (printf "%s" .Status)}}">{{.Status}}</span>
                        {{if eq (printf "%s" .Status) "pending"}}
                        <form action="/admin/tuitions/{{.ID}}/approve" method="POST">
                            <button type="submit" class="inline-flex items-center px-3 py-1 border border-green-300 text-xs font-medium rounded text-green-700 bg-white hover:bg-green-50">Approve</button>
                        </form>
                        <form action="/admin/tuitions/{{.ID}}/reject" method="POST">
                            <button type="submit" class="inline-flex items-center px-3 py-1 border border-red-300 text-xs font-medium rounded text-red-700 bg-white hover:bg-red-50">Reject</button>
                        </form>
                        {{end}}
                    </div>
                </div>
            </li>
            {{else}}
            <li class="px-4 py-8 text-center text-gray-500">No tuitions to review.</li>
            {{end}}
        </ul>
    </div>
</div>
{{end}}`,

	"admin/transactions": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Transactions</h1>
    <div class="bg-white shadow overflow-hidden sm:rounded-lg">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Date</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Student</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Tutor</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Reference</th>
                    <th class="px-6 py-3 text-right text-xs font-medium text-gray-500 uppercase tracking-wider">Amount</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Status</th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Transactions}}
                <tr>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{formatTime .CreatedAt}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">{{.StudentName}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">{{.TutorName}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500 font-mono">{{truncate .PaymentRef 24}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-right text-gray-900">{{formatTk .AmountTk}}</td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{statusBadge .Status}}">{{.Status}}</span>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="6" class="px-6 py-8 text-center text-sm text-gray-500">No transactions.</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>
</div>
{{end}}`,

	"admin/settings": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-lg mx-auto">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Platform Settings</h1>
    <form action="/admin/settings" method="POST" class="bg-white shadow sm:rounded-lg px-4 py-5 sm:p-6 space-y-4">
        <div>
            <label for="service_fee" class="block text-sm font-medium text-gray-700">Service fee (%)</label>
            <input type="number" id="service_fee" name="service_fee" step="0.1" min="0" max="100" value="{{.Settings.ServiceFeePercent}}"
                   class="mt-1 block w-32 px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
        </div>
        <div>
            <label for="contact_email" class="block text-sm font-medium text-gray-700">Contact email</label>
            <input type="email" id="contact_email" name="contact_email" value="{{.Settings.ContactEmail}}"
                   class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
        </div>
        <div>
            <label for="contact_phone" class="block text-sm font-medium text-gray-700">Contact phone</label>
            <input type="tel" id="contact_phone" name="contact_phone" value="{{.Settings.ContactPhone}}"
                   class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
        </div>
        <div>
            <label class="inline-flex items-center text-sm text-gray-700">
                <input type="checkbox" name="maintenance_mode" value="true" {{if .Settings.MaintenanceMode}}checked{{end}} class="mr-2 text-emerald-600">
                Maintenance mode
            </label>
        </div>
        <div class="pt-2 text-right">
            <button type="submit"
                    class="inline-flex items-center px-4 py-2 border border-transparent text-sm font-medium rounded-md shadow-sm text-white bg-emerald-600 hover:bg-emerald-700">
                Save settings
            </button>
        </div>
    </form>
</div>
{{end}}`,
}
