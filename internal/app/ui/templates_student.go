package ui

func init() {
	for name, content := range studentTemplates {
		templates[name] = content
	}
}

var studentTemplates = map[string]string{
	"student/dashboard": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="mb-8">
        <h1 class="text-2xl font-semibold text-gray-900">Dashboard</h1>
        <p class="mt-1 text-sm text-gray-500">Welcome back, {{.Session.Name}}</p>
    </div>

    <div class="grid grid-cols-1 gap-5 sm:grid-cols-2 lg:grid-cols-4 mb-8">
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Posted Tuitions</dt>
            <dd class="mt-1 text-lg font-semibold text-gray-900">{{.Stats.PostedTuitions}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Awaiting Approval</dt>
            <dd class="mt-1 text-lg font-semibold text-yellow-600">{{.Stats.PendingApprovals}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">New Applications</dt>
            <dd class="mt-1 text-lg font-semibold text-blue-600">{{.Stats.NewApplications}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Total Spent</dt>
            <dd class="mt-1 text-lg font-semibold text-gray-900">{{formatTk .Stats.TotalSpentTk}}</dd>
        </div>
    </div>

    <div class="flex space-x-4">
        <a href="/student/tuitions/new" class="inline-flex items-center px-4 py-2 border border-transparent text-sm font-medium rounded-md shadow-sm text-white bg-emerald-600 hover:bg-emerald-700">
            Post a Tuition
        </a>
        <a href="/student/tuitions" class="inline-flex items-center px-4 py-2 border border-gray-300 text-sm font-medium rounded-md shadow-sm text-gray-700 bg-white hover:bg-gray-50">
            My Tuitions
        </a>
    </div>
</div>
{{end}}`,

	"student/tuition_new": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-2xl mx-auto">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Post a Tuition</h1>
    <form action="/student/tuitions/new" method="POST" class="bg-white shadow sm:rounded-lg px-4 py-5 sm:p-6 space-y-4">
        <div>
            <label for="title" class="block text-sm font-medium text-gray-700">Title</label>
            <input type="text" id="title" name="title" required value="{{.Form.Title}}"
                   class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm"
                   placeholder="e.g. Physics tutor for class 9">
        </div>
        <div class="grid grid-cols-2 gap-4">
            <div>
                <label for="class" class="block text-sm font-medium text-gray-700">Class</label>
                <input type="text" id="class" name="class" required value="{{.Form.Class}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
            </div>
            <div>
                <label for="medium" class="block text-sm font-medium text-gray-700">Medium</label>
                <select id="medium" name="medium" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
                    <option value="bangla">Bangla</option>
                    <option value="english">English</option>
                    <option value="english-version">English Version</option>
                </select>
            </div>
        </div>
        <div>
            <label for="subjects" class="block text-sm font-medium text-gray-700">Subjects (comma separated)</label>
            <input type="text" id="subjects" name="subjects" required value="{{.Form.Subjects}}"
                   class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm"
                   placeholder="Physics, Math">
        </div>
        <div class="grid grid-cols-3 gap-4">
            <div class="col-span-2">
                <label for="location" class="block text-sm font-medium text-gray-700">Location</label>
                <input type="text" id="location" name="location" required value="{{.Form.Location}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
            </div>
            <div>
                <label for="days_per_week" class="block text-sm font-medium text-gray-700">Days/week</label>
                <input type="number" id="days_per_week" name="days_per_week" required min="1" max="7" value="{{if .Form.DaysPerWeek}}{{.Form.DaysPerWeek}}{{else}}3{{end}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
            </div>
        </div>
        <div>
            <label for="salary" class="block text-sm font-medium text-gray-700">Monthly salary (Tk)</label>
            <input type="number" id="salary" name="salary" required min="1" value="{{.Form.Salary}}"
                   class="mt-1 block w-48 px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
        </div>
        <div>
            <label for="requirements" class="block text-sm font-medium text-gray-700">Tutor requirements (optional)</label>
            <textarea id="requirements" name="requirements" rows="3"
                      class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">{{.Form.Requirements}}</textarea>
        </div>
        <div class="pt-2 text-right">
            <button type="submit"
                    class="inline-flex items-center px-4 py-2 border border-transparent text-sm font-medium rounded-md shadow-sm text-white bg-emerald-600 hover:bg-emerald-700">
                Submit for review
            </button>
        </div>
    </form>
</div>
{{end}}`,

	"student/tuitions": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">My Tuitions</h1>
        <a href="/student/tuitions/new" class="inline-flex items-center px-4 py-2 border border-transparent text-sm font-medium rounded-md shadow-sm text-white bg-emerald-600 hover:bg-emerald-700">
            Post a Tuition
        </a>
    </div>
    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <ul class="divide-y divide-gray-200">
            {{range .Tuitions}}
            <li class="px-4 py-4 sm:px-6 hover:bg-gray-50">
                <div class="flex items-center justify-between">
                    <div>
                        <p class="text-sm font-medium text-emerald-600">{{.Title}}</p>
                        <p class="mt-1 text-sm text-gray-500">Class {{.Class}} &middot; {{joinSubjects .Subjects}} &middot; {{formatTk .SalaryTk}}/mo</p>
                    </div>
                    <div class="flex items-center space-x-3">
                        <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{statusBadge (printf "%s" .Status)}}">{{.Status}}</span>
                        <a href="/student/tuitions/{{.ID}}/applicants"
                           class="inline-flex items-center px-3 py-1 border border-gray-300 text-xs font-medium rounded text-gray-700 bg-white hover:bg-gray-50">
                            Applicants{{if gt .Applications 0}} ({{.Applications}}){{end}}
                        </a>
                    </div>
                </div>
            </li>
            {{else}}
            <li class="px-4 py-8 text-center text-gray-500">
                You have not posted any tuitions yet.
                <a href="/student/tuitions/new" class="text-emerald-600 hover:text-emerald-500">Post one</a>
            </li>
            {{end}}
        </ul>
    </div>
</div>
{{end}}`,

	"student/applicants": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Applicants</h1>
        <p class="mt-1 text-sm text-gray-500">{{.Tuition.Title}}</p>
    </div>
    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <ul class="divide-y divide-gray-200">
            {{range .Applicants}}
            <li class="px-4 py-4 sm:px-6">
                <div class="flex items-center justify-between">
                    <div class="flex items-center">
                        {{if .TutorPhotoURL}}
                        <img src="{{.TutorPhotoURL}}" alt="" class="h-10 w-10 rounded-full mr-3">
                        {{end}}
                        <div>
                            <p class="text-sm font-medium text-gray-900">{{.TutorName}}</p>
                            <p class="text-sm text-gray-500">Expects {{formatTk .ExpectedSalaryTk}}/mo</p>
                            {{if .Message}}<p class="mt-1 text-sm text-gray-500">{{truncate .Message 140}}</p>{{end}}
                        </div>
                    </div>
                    <div class="flex items-center space-x-2">
                        <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{statusBadge (printf "%s" .Status)}}">{{.Status}}</span>
                        {{if eq (printf "%s" .Status) "pending"}}
                        <form action="/student/applications/{{.ID}}/shortlist" method="POST">
                            <button type="submit" class="inline-flex items-center px-3 py-1 border border-blue-300 text-xs font-medium rounded text-blue-700 bg-white hover:bg-blue-50">Shortlist</button>
                        </form>
                        {{end}}
                        {{if ne (printf "%s" .Status) "hired"}}
                        <form action="/student/applications/{{.ID}}/reject" method="POST">
                            <button type="submit" class="inline-flex items-center px-3 py-1 border border-red-300 text-xs font-medium rounded text-red-700 bg-white hover:bg-red-50">Reject</button>
                        </form>
                        <a href="/student/applications/{{.ID}}/checkout"
                           class="inline-flex items-center px-3 py-1 border border-transparent text-xs font-medium rounded text-white bg-emerald-600 hover:bg-emerald-700">
                            Hire
                        </a>
                        {{end}}
                    </div>
                </div>
            </li>
            {{else}}
            <li class="px-4 py-8 text-center text-gray-500">No applications yet.</li>
            {{end}}
        </ul>
    </div>
</div>
{{end}}`,

	"student/checkout": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-lg mx-auto">
    <h1 class="text-2xl font-semibold text-gray-900 mb-2">Hire {{.Application.TutorName}}</h1>
    <p class="text-sm text-gray-500 mb-6">{{.Application.TuitionTitle}}</p>

    <div class="bg-white shadow sm:rounded-lg px-4 py-5 sm:p-6">
        <dl class="space-y-2 mb-6">
            <div class="flex justify-between text-sm">
                <dt class="text-gray-500">Monthly salary</dt>
                <dd class="text-gray-900">{{formatTk .Application.ExpectedSalaryTk}}</dd>
            </div>
            <div class="flex justify-between text-sm">
                <dt class="text-gray-500">Platform fee ({{.FeePercent}}%)</dt>
                <dd class="text-gray-900">{{formatTk .FeeTk}}</dd>
            </div>
            <div class="flex justify-between text-sm font-semibold border-t pt-2">
                <dt class="text-gray-900">Due now</dt>
                <dd class="text-gray-900">{{formatTk .FeeTk}}</dd>
            </div>
        </dl>

        <form id="payment-form" action="/student/applications/{{.Application.ID}}/checkout" method="POST">
            <input type="hidden" name="flow_id" value="{{.FlowID}}">
            <input type="hidden" name="payment_method_id" id="payment_method_id" value="">
            <div id="card-element" class="px-3 py-3 border border-gray-300 rounded-md"></div>
            <div id="card-errors" class="mt-2 text-sm text-red-600"></div>
            <button type="submit" id="submit-button"
                    class="mt-4 w-full flex justify-center py-2 px-4 border border-transparent text-sm font-medium rounded-md text-white bg-emerald-600 hover:bg-emerald-700">
                Pay {{formatTk .FeeTk}}
            </button>
        </form>
    </div>

    <script>
    const stripe = Stripe("{{.StripePublishableKey}}");
    const elements = stripe.elements();
    const card = elements.create("card");
    card.mount("#card-element");

    const form = document.getElementById("payment-form");
    form.addEventListener("submit", async (event) => {
        if (document.getElementById("payment_method_id").value) return;
        event.preventDefault();
        document.getElementById("submit-button").disabled = true;
        const result = await stripe.createPaymentMethod({type: "card", card: card});
        if (result.error) {
            document.getElementById("card-errors").textContent = result.error.message;
            document.getElementById("submit-button").disabled = false;
            return;
        }
        document.getElementById("payment_method_id").value = result.paymentMethod.id;
        form.submit();
    });
    </script>
</div>
{{end}}`,

	"student/ongoing": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Ongoing Tuitions</h1>
    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <ul class="divide-y divide-gray-200">
            {{range .Ongoing}}
            <li class="px-4 py-4 sm:px-6">
                <div class="flex items-center justify-between">
                    <div>
                        <p class="text-sm font-medium text-gray-900">{{.TuitionTitle}}</p>
                        <p class="mt-1 text-sm text-gray-500">Tutor: {{.TutorName}} &middot; {{formatTk .MonthlySalaryTk}}/mo &middot; started {{formatDate .StartedAt}}</p>
                    </div>
                    <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{statusBadge .Status}}">{{.Status}}</span>
                </div>
            </li>
            {{else}}
            <li class="px-4 py-8 text-center text-gray-500">No ongoing tuitions. Hire a tutor from your applicants.</li>
            {{end}}
        </ul>
    </div>
</div>
{{end}}`,

	"student/payments": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Payment History</h1>
    <div class="bg-white shadow overflow-hidden sm:rounded-lg">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Date</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Tutor</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Reference</th>
                    <th class="px-6 py-3 text-right text-xs font-medium text-gray-500 uppercase tracking-wider">Amount</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Status</th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Transactions}}
                <tr>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{formatDate .CreatedAt}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">{{.TutorName}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500 font-mono">{{truncate .PaymentRef 24}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-right text-gray-900">{{formatTk .AmountTk}}</td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{statusBadge .Status}}">{{.Status}}</span>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="5" class="px-6 py-8 text-center text-sm text-gray-500">No payments yet.</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>
</div>
{{end}}`,
}
