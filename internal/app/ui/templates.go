package ui

// templates holds all template content, keyed by page name. Pages render
// into the layout's content slot; the layout itself draws the shell chrome
// from the navigation passed in by the handler.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} | eTuitionBD</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <script src="https://js.stripe.com/v3/"></script>
</head>
<body class="bg-gray-50 min-h-screen">
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex">
                    <a href="/" class="flex items-center px-2 py-2 text-xl font-bold text-emerald-600">
                        eTuitionBD
                    </a>
                    <div class="hidden sm:ml-6 sm:flex sm:space-x-6">
                        {{range .Nav.Items}}
                        <a href="{{.URL}}" class="inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium {{if eq .URL $.Active}}border-emerald-500 text-gray-900{{else}}border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700{{end}}">
                            {{.Name}}
                            {{if gt .Badge 0}}
                            <span class="ml-1 inline-flex items-center px-1.5 py-0.5 rounded-full text-xs font-medium bg-emerald-100 text-emerald-800">{{.Badge}}</span>
                            {{end}}
                        </a>
                        {{end}}
                    </div>
                </div>
                <div class="flex items-center">
                    {{if .Session}}
                    {{if .Session.PhotoURL}}
                    <img src="{{.Session.PhotoURL}}" alt="" class="h-8 w-8 rounded-full mr-2">
                    {{end}}
                    <span class="text-sm text-gray-600 mr-4">{{.Session.Name}}</span>
                    <form action="/logout" method="POST">
                        <button type="submit" class="text-sm text-gray-500 hover:text-gray-700">Logout</button>
                    </form>
                    {{else}}
                    <a href="/login" class="text-sm text-gray-500 hover:text-gray-700 mr-4">Sign in</a>
                    <a href="/register" class="text-sm font-medium text-white bg-emerald-600 hover:bg-emerald-700 px-3 py-1.5 rounded-md">Get started</a>
                    {{end}}
                </div>
            </div>
        </div>
    </nav>

    {{if .Flash}}
    <div class="max-w-7xl mx-auto px-4 mt-4">
        <div class="rounded-md bg-green-50 p-4 text-sm text-green-700">{{.Flash}}</div>
    </div>
    {{end}}
    {{if .Error}}
    <div class="max-w-7xl mx-auto px-4 mt-4">
        <div class="rounded-md bg-red-50 p-4 text-sm text-red-700">{{.Error}}</div>
    </div>
    {{end}}

    <main class="max-w-7xl mx-auto py-6 sm:px-6 lg:px-8">
        {{template "content" .}}
    </main>
</body>
</html>`,

	"landing": `{{define "content"}}
<div class="px-4 py-16 text-center">
    <h1 class="text-4xl font-extrabold text-gray-900">Find the right tutor in Bangladesh</h1>
    <p class="mt-4 text-lg text-gray-500 max-w-2xl mx-auto">
        Students post tuition requirements, verified tutors apply, and hiring is
        settled with secure online payment.
    </p>
    <div class="mt-8 flex justify-center space-x-4">
        <a href="/tuitions" class="inline-flex items-center px-6 py-3 border border-transparent text-base font-medium rounded-md text-white bg-emerald-600 hover:bg-emerald-700">
            Browse tuitions
        </a>
        <a href="/register" class="inline-flex items-center px-6 py-3 border border-gray-300 text-base font-medium rounded-md text-gray-700 bg-white hover:bg-gray-50">
            Become a tutor
        </a>
    </div>

    <div class="mt-16 grid grid-cols-1 gap-8 sm:grid-cols-3 max-w-4xl mx-auto text-left">
        <div class="bg-white shadow rounded-lg p-6">
            <h3 class="text-lg font-medium text-gray-900">Post a requirement</h3>
            <p class="mt-2 text-sm text-gray-500">Describe the class, subjects and salary. Your post goes live after a quick review.</p>
        </div>
        <div class="bg-white shadow rounded-lg p-6">
            <h3 class="text-lg font-medium text-gray-900">Compare applicants</h3>
            <p class="mt-2 text-sm text-gray-500">Tutors apply with their expected salary and profile. Shortlist the ones you like.</p>
        </div>
        <div class="bg-white shadow rounded-lg p-6">
            <h3 class="text-lg font-medium text-gray-900">Hire securely</h3>
            <p class="mt-2 text-sm text-gray-500">Pay the platform fee by card and start the tuition. Card details never touch our servers.</p>
        </div>
    </div>
</div>
{{end}}`,

	"auth/login": `{{define "content"}}
<div class="flex items-center justify-center py-12 px-4">
    <div class="max-w-md w-full space-y-6">
        <h2 class="text-center text-3xl font-extrabold text-gray-900">Sign in</h2>
        <form class="space-y-4" action="/login" method="POST">
            <div>
                <label for="email" class="block text-sm font-medium text-gray-700">Email</label>
                <input id="email" name="email" type="email" required
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm focus:ring-emerald-500 focus:border-emerald-500 sm:text-sm">
            </div>
            <div>
                <label for="password" class="block text-sm font-medium text-gray-700">Password</label>
                <input id="password" name="password" type="password" required
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm focus:ring-emerald-500 focus:border-emerald-500 sm:text-sm">
            </div>
            <button type="submit"
                    class="w-full flex justify-center py-2 px-4 border border-transparent text-sm font-medium rounded-md text-white bg-emerald-600 hover:bg-emerald-700">
                Sign in
            </button>
        </form>
        <div class="relative">
            <div class="absolute inset-0 flex items-center"><div class="w-full border-t border-gray-300"></div></div>
            <div class="relative flex justify-center text-sm"><span class="px-2 bg-gray-50 text-gray-500">or</span></div>
        </div>
        <a href="/auth/google"
           class="w-full flex justify-center py-2 px-4 border border-gray-300 text-sm font-medium rounded-md text-gray-700 bg-white hover:bg-gray-50">
            Continue with Google
        </a>
        <p class="text-center text-sm text-gray-500">
            No account? <a href="/register" class="text-emerald-600 hover:text-emerald-500">Register</a>
        </p>
    </div>
</div>
{{end}}`,

	"auth/register": `{{define "content"}}
<div class="flex items-center justify-center py-12 px-4">
    <div class="max-w-md w-full space-y-6">
        <h2 class="text-center text-3xl font-extrabold text-gray-900">Create your account</h2>
        <form class="space-y-4" action="/register" method="POST">
            <div>
                <label for="name" class="block text-sm font-medium text-gray-700">Full name</label>
                <input id="name" name="name" type="text" required value="{{.Name}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm focus:ring-emerald-500 focus:border-emerald-500 sm:text-sm">
            </div>
            <div>
                <label for="email" class="block text-sm font-medium text-gray-700">Email</label>
                <input id="email" name="email" type="email" required value="{{.Email}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm focus:ring-emerald-500 focus:border-emerald-500 sm:text-sm">
            </div>
            <div>
                <label for="password" class="block text-sm font-medium text-gray-700">Password</label>
                <input id="password" name="password" type="password" required minlength="8"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm focus:ring-emerald-500 focus:border-emerald-500 sm:text-sm">
            </div>
            <div>
                <span class="block text-sm font-medium text-gray-700">I want to</span>
                <div class="mt-2 flex space-x-6">
                    <label class="inline-flex items-center text-sm text-gray-700">
                        <input type="radio" name="role" value="student" checked class="mr-2 text-emerald-600">
                        Find a tutor
                    </label>
                    <label class="inline-flex items-center text-sm text-gray-700">
                        <input type="radio" name="role" value="tutor" class="mr-2 text-emerald-600">
                        Teach students
                    </label>
                </div>
            </div>
            <button type="submit"
                    class="w-full flex justify-center py-2 px-4 border border-transparent text-sm font-medium rounded-md text-white bg-emerald-600 hover:bg-emerald-700">
                Register
            </button>
        </form>
        <p class="text-center text-sm text-gray-500">
            Already registered? <a href="/login" class="text-emerald-600 hover:text-emerald-500">Sign in</a>
        </p>
    </div>
</div>
{{end}}`,

	"tuitions/browse": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Open Tuitions</h1>
    </div>

    <form method="GET" class="bg-white shadow rounded-lg p-4 mb-6 flex flex-wrap items-end gap-4">
        <div>
            <label for="class" class="block text-xs font-medium text-gray-500 mb-1">Class</label>
            <input type="text" id="class" name="class" value="{{.FilterClass}}" placeholder="e.g. 9"
                   class="block w-28 px-2 py-1 text-sm border-gray-300 rounded-md">
        </div>
        <div>
            <label for="subject" class="block text-xs font-medium text-gray-500 mb-1">Subject</label>
            <input type="text" id="subject" name="subject" value="{{.FilterSubject}}" placeholder="e.g. Physics"
                   class="block w-36 px-2 py-1 text-sm border-gray-300 rounded-md">
        </div>
        <div>
            <label for="location" class="block text-xs font-medium text-gray-500 mb-1">Location</label>
            <input type="text" id="location" name="location" value="{{.FilterLocation}}" placeholder="e.g. Dhanmondi"
                   class="block w-36 px-2 py-1 text-sm border-gray-300 rounded-md">
        </div>
        <button type="submit" class="px-3 py-1 text-sm bg-gray-100 text-gray-700 rounded-md hover:bg-gray-200">Filter</button>
    </form>

    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <ul class="divide-y divide-gray-200">
            {{range .Tuitions}}
            <li>
                <a href="{{$.DetailBase}}/{{.ID}}" class="block hover:bg-gray-50 px-4 py-4 sm:px-6">
                    <div class="flex items-center justify-between">
                        <p class="text-sm font-medium text-emerald-600 truncate">{{.Title}}</p>
                        <p class="text-sm font-semibold text-gray-900">{{formatTk .SalaryTk}}/mo</p>
                    </div>
                    <div class="mt-2 flex items-center text-sm text-gray-500">
                        <span>Class {{.Class}}</span>
                        <span class="mx-2">&middot;</span>
                        <span>{{joinSubjects .Subjects}}</span>
                        <span class="mx-2">&middot;</span>
                        <span>{{.Location}}</span>
                        <span class="mx-2">&middot;</span>
                        <span>{{.DaysPerWeek}} days/week</span>
                    </div>
                </a>
            </li>
            {{else}}
            <li class="px-4 py-8 text-center text-gray-500">No open tuitions match your filters.</li>
            {{end}}
        </ul>
    </div>
</div>
{{end}}`,

	"tuitions/detail": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="bg-white shadow overflow-hidden sm:rounded-lg">
        <div class="px-4 py-5 sm:px-6 flex justify-between items-start">
            <div>
                <h1 class="text-2xl font-semibold text-gray-900">{{.Tuition.Title}}</h1>
                <p class="mt-1 text-sm text-gray-500">Posted by {{.Tuition.StudentName}} on {{formatDate .Tuition.CreatedAt}}</p>
            </div>
            <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{statusBadge (printf "%s" .Tuition.Status)}}">{{.Tuition.Status}}</span>
        </div>
        <div class="border-t border-gray-200">
            <dl>
                <div class="bg-gray-50 px-4 py-4 sm:grid sm:grid-cols-3 sm:gap-4 sm:px-6">
                    <dt class="text-sm font-medium text-gray-500">Class</dt>
                    <dd class="mt-1 text-sm text-gray-900 sm:mt-0 sm:col-span-2">{{.Tuition.Class}} ({{.Tuition.Medium}})</dd>
                </div>
                <div class="bg-white px-4 py-4 sm:grid sm:grid-cols-3 sm:gap-4 sm:px-6">
                    <dt class="text-sm font-medium text-gray-500">Subjects</dt>
                    <dd class="mt-1 text-sm text-gray-900 sm:mt-0 sm:col-span-2">{{joinSubjects .Tuition.Subjects}}</dd>
                </div>
                <div class="bg-gray-50 px-4 py-4 sm:grid sm:grid-cols-3 sm:gap-4 sm:px-6">
                    <dt class="text-sm font-medium text-gray-500">Location</dt>
                    <dd class="mt-1 text-sm text-gray-900 sm:mt-0 sm:col-span-2">{{.Tuition.Location}}</dd>
                </div>
                <div class="bg-white px-4 py-4 sm:grid sm:grid-cols-3 sm:gap-4 sm:px-6">
                    <dt class="text-sm font-medium text-gray-500">Schedule</dt>
                    <dd class="mt-1 text-sm text-gray-900 sm:mt-0 sm:col-span-2">{{.Tuition.DaysPerWeek}} days/week</dd>
                </div>
                <div class="bg-gray-50 px-4 py-4 sm:grid sm:grid-cols-3 sm:gap-4 sm:px-6">
                    <dt class="text-sm font-medium text-gray-500">Salary</dt>
                    <dd class="mt-1 text-sm font-semibold text-gray-900 sm:mt-0 sm:col-span-2">{{formatTk .Tuition.SalaryTk}}/month</dd>
                </div>
                {{if .Tuition.Requirements}}
                <div class="bg-white px-4 py-4 sm:grid sm:grid-cols-3 sm:gap-4 sm:px-6">
                    <dt class="text-sm font-medium text-gray-500">Requirements</dt>
                    <dd class="mt-1 text-sm text-gray-900 sm:mt-0 sm:col-span-2">{{.Tuition.Requirements}}</dd>
                </div>
                {{end}}
            </dl>
        </div>
    </div>

    {{if .CanApply}}
    <div class="mt-6 bg-white shadow sm:rounded-lg">
        <div class="px-4 py-5 sm:p-6">
            <h3 class="text-lg font-medium text-gray-900">Apply for this tuition</h3>
            <form class="mt-4 space-y-4" action="/tutor/tuitions/{{.Tuition.ID}}/apply" method="POST">
                <div>
                    <label for="expected_salary" class="block text-sm font-medium text-gray-700">Expected monthly salary (Tk)</label>
                    <input type="number" id="expected_salary" name="expected_salary" required min="1" value="{{.Tuition.SalaryTk}}"
                           class="mt-1 block w-48 px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm">
                </div>
                <div>
                    <label for="message" class="block text-sm font-medium text-gray-700">Message to the student</label>
                    <textarea id="message" name="message" rows="3"
                              class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md shadow-sm sm:text-sm"
                              placeholder="Introduce yourself briefly"></textarea>
                </div>
                <button type="submit"
                        class="inline-flex items-center px-4 py-2 border border-transparent text-sm font-medium rounded-md shadow-sm text-white bg-emerald-600 hover:bg-emerald-700">
                    Submit application
                </button>
            </form>
        </div>
    </div>
    {{else if .AlreadyApplied}}
    <div class="mt-6 rounded-md bg-blue-50 p-4 text-sm text-blue-700">
        You have already applied to this tuition.
    </div>
    {{end}}
</div>
{{end}}`,

	"errors/404": `{{define "content"}}
<div class="py-24 text-center">
    <h1 class="text-6xl font-bold text-gray-300">404</h1>
    <p class="mt-4 text-lg text-gray-600">This page does not exist.</p>
    <a href="/" class="mt-6 inline-block text-emerald-600 hover:text-emerald-500">Back to home</a>
</div>
{{end}}`,

	"errors/403": `{{define "content"}}
<div class="py-24 text-center">
    <h1 class="text-6xl font-bold text-gray-300">403</h1>
    <p class="mt-4 text-lg text-gray-600">Your account is not permitted to view this page.</p>
    <a href="/" class="mt-6 inline-block text-emerald-600 hover:text-emerald-500">Back to home</a>
</div>
{{end}}`,

	"errors/fetch": `{{define "content"}}
<div class="py-24 text-center">
    <h1 class="text-2xl font-semibold text-gray-900">Something went wrong</h1>
    <p class="mt-4 text-sm text-gray-600">{{.Message}}</p>
    <a href="{{.RetryURL}}" class="mt-6 inline-block text-emerald-600 hover:text-emerald-500">Try again</a>
</div>
{{end}}`,
}
