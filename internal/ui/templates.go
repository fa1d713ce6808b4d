package ui

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04:05")
	},
	"relTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return humanize.Time(t)
	},
	// formatAmount renders a decimal-string amount with grouped thousands
	// and two decimals, sign stripped; callers decide how to show debits.
	"formatAmount": func(s string) string {
		v, err := strconv.ParseFloat(strings.TrimPrefix(s, "-"), 64)
		if err != nil {
			return s
		}
		return humanize.FormatFloat("#,###.##", v)
	},
	"formatFloat": func(v float64) string {
		return humanize.FormatFloat("#,###.##", v)
	},
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"txColor": func(status string) string {
		switch strings.ToLower(status) {
		case "completed", "approved", "paid":
			return "text-green-600"
		case "pending":
			return "text-yellow-600"
		case "failed", "rejected":
			return "text-red-600"
		default:
			return "text-gray-600"
		}
	},
	"statusBadge": func(status string) string {
		switch strings.ToLower(status) {
		case "completed", "approved", "paid", "active":
			return "bg-green-100 text-green-800"
		case "pending", "paused":
			return "bg-yellow-100 text-yellow-800"
		case "failed", "rejected", "frozen":
			return "bg-red-100 text-red-800"
		default:
			return "bg-gray-100 text-gray-800"
		}
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"truncate": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return s[:n] + "..."
	},
	"urlquery": func(s string) string {
		return template.URLQueryEscaper(s)
	},
}

// renderTemplate renders a template with the given data.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	if _, err := tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	// Add shared components.
	for compName, compContent := range templates {
		if strings.HasPrefix(compName, "components/") {
			if _, err := tmpl.New(strings.TrimPrefix(compName, "components/")).Parse(compContent); err != nil {
				return fmt.Errorf("parse component %s: %w", compName, err)
			}
		}
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content. In a production app, these would be
// loaded from files.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 min-h-screen">
    {{if .Session}}
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex">
                    <a href="/" class="flex items-center px-2 py-2 text-xl font-bold text-indigo-600">Optivus</a>
                    <div class="hidden sm:ml-6 sm:flex sm:space-x-8">
                        <a href="/" class="border-transparent text-gray-500 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Dashboard</a>
                        <a href="/team" class="border-transparent text-gray-500 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Team</a>
                        <a href="/history" class="border-transparent text-gray-500 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">History</a>
                        <a href="/withdraw" class="border-transparent text-gray-500 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Withdraw</a>
                        <a href="/kyc" class="border-transparent text-gray-500 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Verification</a>
                        <a href="/settings/" class="border-transparent text-gray-500 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Settings</a>
                        {{if .Session.IsAdmin}}
                        <a href="/admin" class="border-transparent text-gray-500 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Admin</a>
                        {{end}}
                    </div>
                </div>
                <div class="flex items-center">
                    <span class="text-sm text-gray-500 mr-4">{{.Session.Email}}</span>
                    <a href="/logout" class="text-sm text-gray-500 hover:text-gray-700">Logout</a>
                </div>
            </div>
        </div>
    </nav>
    {{end}}

    <main class="max-w-7xl mx-auto py-6 sm:px-6 lg:px-8">
        {{template "content" .}}
    </main>
</body>
</html>`,

	"components/alerts": `{{if .Error}}
<div class="mb-4 rounded-md bg-red-50 p-4 text-sm text-red-700">{{.Error}}</div>
{{end}}
{{if .Notice}}
<div class="mb-4 rounded-md bg-green-50 p-4 text-sm text-green-700">{{.Notice}}</div>
{{end}}`,

	"login": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center py-12 px-4">
    <div class="max-w-md w-full space-y-6">
        <h2 class="text-center text-3xl font-extrabold text-gray-900">Sign in to Optivus</h2>
        {{template "alerts" .}}
        <form method="POST" action="/login" class="mt-8 space-y-4">
            <input name="email" type="email" required placeholder="Email address"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300">
            <input name="password" type="password" required placeholder="Password"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300">
            <button type="submit" class="w-full py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">
                Sign in
            </button>
        </form>
        <div class="flex justify-between text-sm">
            <a href="/forgot-password" class="text-indigo-600 hover:text-indigo-500">Forgot password?</a>
            <a href="/signup" class="text-indigo-600 hover:text-indigo-500">Create an account</a>
        </div>
    </div>
</div>
{{end}}`,

	"twofactor": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center py-12 px-4">
    <div class="max-w-md w-full space-y-6">
        <h2 class="text-center text-3xl font-extrabold text-gray-900">Two-factor verification</h2>
        <p class="text-center text-sm text-gray-600">Enter the code from your authenticator app for {{.Email}}</p>
        {{template "alerts" .}}
        <form method="POST" action="/2fa" class="mt-8 space-y-4">
            <input name="code" type="text" inputmode="numeric" autocomplete="one-time-code" required
                   placeholder="6-digit code"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300 text-center tracking-widest">
            <button type="submit" class="w-full py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">
                Verify
            </button>
        </form>
        <div class="text-center text-sm">
            <a href="/login" class="text-indigo-600 hover:text-indigo-500">Back to login</a>
        </div>
    </div>
</div>
{{end}}`,

	"signup": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center py-12 px-4">
    <div class="max-w-md w-full space-y-6">
        <h2 class="text-center text-3xl font-extrabold text-gray-900">Create your account</h2>
        {{template "alerts" .}}
        <form method="POST" action="/signup" class="mt-8 space-y-4">
            <input name="email" type="email" required placeholder="Email address"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300">
            <input name="username" type="text" required placeholder="Username"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300">
            <input name="password" type="password" required placeholder="Password"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300">
            <input name="referred_by" type="text" value="{{.Referral}}" placeholder="Referral code (optional)"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300">
            <button type="submit" class="w-full py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">
                Sign up
            </button>
        </form>
        <div class="text-center text-sm">
            <a href="/login" class="text-indigo-600 hover:text-indigo-500">Already have an account? Sign in</a>
        </div>
    </div>
</div>
{{end}}`,

	"forgot_password": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center py-12 px-4">
    <div class="max-w-md w-full space-y-6">
        <h2 class="text-center text-3xl font-extrabold text-gray-900">Recover your password</h2>
        {{template "alerts" .}}
        <form method="POST" action="/forgot-password" class="mt-8 space-y-4">
            <input name="email" type="email" required placeholder="Email address"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300">
            <button type="submit" class="w-full py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">
                Send recovery email
            </button>
        </form>
        <div class="text-center text-sm">
            <a href="/login" class="text-indigo-600 hover:text-indigo-500">Back to login</a>
        </div>
    </div>
</div>
{{end}}`,

	"reset_password": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center py-12 px-4">
    <div class="max-w-md w-full space-y-6">
        <h2 class="text-center text-3xl font-extrabold text-gray-900">Set a new password</h2>
        {{template "alerts" .}}
        <form method="POST" action="/reset-password" class="mt-8 space-y-4">
            <input type="hidden" name="token" value="{{.Token}}">
            <input name="password" type="password" required placeholder="New password"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300">
            <button type="submit" class="w-full py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">
                Reset password
            </button>
        </form>
    </div>
</div>
{{end}}`,

	"dashboard": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900">Welcome back, {{.User.DisplayName}}</h1>

    <div class="mt-6 grid grid-cols-1 gap-5 sm:grid-cols-3">
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Total earnings</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">${{formatFloat .Stats.TotalEarnings}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Team size</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">{{comma .Stats.TotalTeamSize}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Direct referrals</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">{{comma .Stats.DirectReferrals}}</dd>
        </div>
    </div>

    {{if .ReferralLink}}
    <div class="mt-6 bg-white shadow rounded-lg p-5">
        <h3 class="text-sm font-medium text-gray-500">Your referral link</h3>
        <p class="mt-1 text-sm font-mono text-indigo-600 break-all">{{.ReferralLink}}</p>
    </div>
    {{end}}

    <div class="mt-6 bg-white shadow rounded-lg p-5">
        <div class="flex justify-between items-center">
            <h3 class="text-lg font-medium text-gray-900">Balance</h3>
            <span class="text-2xl font-semibold text-gray-900">${{formatAmount .User.Balance}}</span>
        </div>
        {{if not .User.KycVerified}}
        <p class="mt-2 text-sm text-yellow-700">Your account is not verified yet.
            <a href="/kyc" class="underline">Complete verification</a> to enable withdrawals.</p>
        {{end}}
    </div>
</div>
{{end}}`,

	"team": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900">My Team ({{comma .TeamTotal}} members)</h1>
    <div class="mt-6 bg-white shadow rounded-lg p-5">
        {{if .Team}}
        {{range .Team}}{{template "team_member" .}}{{end}}
        {{else}}
        <p class="text-sm text-gray-500">No referrals yet. Share your referral link to grow your team.</p>
        {{end}}
    </div>
</div>
{{end}}`,

	"components/team_member": `{{define "team_member"}}
<div class="ml-{{.Level}} py-2 border-b border-gray-100">
    <div class="flex justify-between">
        <div>
            <span class="text-sm font-medium text-gray-900">{{.Name}}</span>
            <span class="ml-2 text-xs text-gray-500">@{{.Username}} &middot; level {{.Level}}</span>
        </div>
        <span class="text-sm text-gray-700">${{formatFloat .EarningsFrom}}</span>
    </div>
    {{range .Children}}{{template "team_member" .}}{{end}}
</div>
{{end}}`,

	"history": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900">Transaction History</h1>
    <div class="mt-6 bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Date</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Type</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Reference</th>
                    <th class="px-6 py-3 text-right text-xs font-medium text-gray-500 uppercase">Amount</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Status</th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Transactions}}
                <tr>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500" title="{{formatTime .CreatedAt}}">{{relTime .CreatedAt}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900 capitalize">{{.Type}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{truncate .Reference 32}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-right {{if .IsDebit}}text-red-600{{else}}text-green-600{{end}}">
                        {{if .IsDebit}}-{{end}}${{formatAmount .Amount}}
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="px-2 py-1 text-xs rounded-full {{statusBadge (printf "%s" .Status)}}">{{.Status}}</span>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="5" class="px-6 py-8 text-center text-sm text-gray-500">No transactions yet</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>
</div>
{{end}}`,

	"withdraw": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900">Withdraw</h1>
    {{template "alerts" .}}

    {{if .KycRequired}}
    <div class="mt-4 rounded-md bg-yellow-50 p-4 text-sm text-yellow-700">
        Your account is not verified yet. <a href="/kyc" class="font-medium underline">Complete identity verification</a> to enable withdrawals.
    </div>
    {{else if .Paused}}
    <div class="mt-4 rounded-md bg-yellow-50 p-4 text-sm text-yellow-700">
        Withdrawals are currently paused on your account. Contact support for details.
    </div>
    {{else}}
    <div class="mt-6 bg-white shadow rounded-lg p-5">
        <p class="text-sm text-gray-500">Available balance: <span class="font-semibold text-gray-900">${{formatAmount .User.Balance}}</span></p>
        <form method="POST" action="/withdraw" class="mt-4 grid grid-cols-1 gap-4 sm:grid-cols-2">
            <input name="amount" type="text" required placeholder="Amount"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="bank_name" type="text" required placeholder="Bank name"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="account_number" type="text" required placeholder="Account number"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="account_name" type="text" required placeholder="Account name"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="pin" type="password" required placeholder="Transaction PIN" autocomplete="off"
                   class="rounded-md px-3 py-2 border border-gray-300 sm:col-span-2">
            <button type="submit" class="sm:col-span-2 py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">
                Request withdrawal
            </button>
        </form>
    </div>
    {{end}}

    {{if .Withdrawals}}
    <div class="mt-6 bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Date</th>
                    <th class="px-6 py-3 text-right text-xs font-medium text-gray-500 uppercase">Amount</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Bank</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Status</th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Withdrawals}}
                <tr>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{.Date}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-right text-gray-900">${{formatAmount .Amount}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{.BankName}}</td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="px-2 py-1 text-xs rounded-full {{statusBadge (printf "%s" .Status)}}">{{.Status}}</span>
                    </td>
                </tr>
                {{end}}
            </tbody>
        </table>
    </div>
    {{end}}
</div>
{{end}}`,

	"kyc": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900">Identity Verification</h1>
    {{template "alerts" .}}

    <div class="mt-6 bg-white shadow rounded-lg p-5">
        <p class="text-sm text-gray-500">Status:
            <span class="px-2 py-1 text-xs rounded-full {{statusBadge (printf "%s" .Status.Status)}}">{{.Status.Status}}</span>
        </p>
        {{if .Status.RejectionReason}}
        <p class="mt-2 text-sm text-red-600">Reason: {{.Status.RejectionReason}}</p>
        {{end}}
    </div>

    {{if .CanSubmit}}
    <div class="mt-6 bg-white shadow rounded-lg p-5">
        <form method="POST" action="/kyc" enctype="multipart/form-data" class="grid grid-cols-1 gap-4 sm:grid-cols-2">
            <input name="address" type="text" required placeholder="Street address"
                   class="sm:col-span-2 rounded-md px-3 py-2 border border-gray-300">
            <input name="city" type="text" required placeholder="City"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="postal_code" type="text" required placeholder="Postal code"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="country" type="text" required placeholder="Country"
                   class="sm:col-span-2 rounded-md px-3 py-2 border border-gray-300">
            <div class="sm:col-span-2">
                <label class="block text-sm text-gray-700">Identity document (passport or ID card)</label>
                <input name="document" type="file" required accept=".pdf,.jpg,.jpeg,.png" class="mt-1 text-sm">
            </div>
            <button type="submit" class="sm:col-span-2 py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">
                Submit for review
            </button>
        </form>
    </div>
    {{end}}
</div>
{{end}}`,

	"settings": `{{define "content"}}
<div class="px-4 sm:px-0 space-y-6">
    <h1 class="text-2xl font-semibold text-gray-900">Settings</h1>
    {{template "alerts" .}}

    <div class="bg-white shadow rounded-lg p-5">
        <h3 class="text-lg font-medium text-gray-900">Profile</h3>
        <form method="POST" action="/settings/profile" class="mt-4 grid grid-cols-1 gap-4 sm:grid-cols-2">
            <input name="first_name" type="text" value="{{.User.FirstName}}" placeholder="First name"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="last_name" type="text" value="{{.User.LastName}}" placeholder="Last name"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="username" type="text" value="{{.User.Username}}" placeholder="Username"
                   class="sm:col-span-2 rounded-md px-3 py-2 border border-gray-300">
            <button type="submit" class="sm:col-span-2 py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">
                Save profile
            </button>
        </form>
    </div>

    <div class="bg-white shadow rounded-lg p-5">
        <h3 class="text-lg font-medium text-gray-900">Two-factor authentication</h3>
        {{if .User.TwoFactorEnabled}}
        <p class="mt-2 text-sm text-green-600">Enabled</p>
        <form method="POST" action="/settings/2fa/disable" class="mt-4 flex gap-4">
            <input name="code" type="text" required placeholder="Current code"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <button type="submit" class="py-2 px-4 rounded-md text-white bg-red-600 hover:bg-red-700">Disable</button>
        </form>
        {{else if .TwoFactorSecret}}
        <p class="mt-2 text-sm text-gray-600">Scan this secret in your authenticator app, then confirm with a code.</p>
        <p class="mt-2 text-sm font-mono break-all">{{.TwoFactorSecret.Secret}}</p>
        <form method="POST" action="/settings/2fa/enable" class="mt-4 flex gap-4">
            <input name="code" type="text" required placeholder="6-digit code"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <button type="submit" class="py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Confirm</button>
        </form>
        {{else}}
        <p class="mt-2 text-sm text-gray-500">Disabled</p>
        <a href="/settings/?setup_2fa=1" class="mt-4 inline-block py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">
            Enable 2FA
        </a>
        {{end}}
    </div>

    <div class="bg-white shadow rounded-lg p-5">
        <h3 class="text-lg font-medium text-gray-900">Transaction PIN</h3>
        {{if .User.HasPin}}
        <form method="POST" action="/settings/pin/change" class="mt-4 flex gap-4">
            <input name="current_pin" type="password" required placeholder="Current PIN"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="new_pin" type="password" required placeholder="New PIN"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <button type="submit" class="py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Change PIN</button>
        </form>
        {{else}}
        <form method="POST" action="/settings/pin" class="mt-4">
            <input type="hidden" name="request_token" value="1">
            <button type="submit" class="py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">
                Email me a PIN token
            </button>
        </form>
        <form method="POST" action="/settings/pin" class="mt-4 flex gap-4">
            <input name="pin_token" type="text" required placeholder="Token from email"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="pin" type="password" required placeholder="New PIN"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <button type="submit" class="py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Set PIN</button>
        </form>
        {{end}}
    </div>
</div>
{{end}}`,

	"error": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center py-12 px-4">
    <div class="text-center">
        <h2 class="text-2xl font-semibold text-gray-900">{{.Message}}</h2>
        <a href="/" class="mt-4 inline-block text-indigo-600 hover:text-indigo-500">Back to dashboard</a>
    </div>
</div>
{{end}}`,

	"admin/login": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center py-12 px-4">
    <div class="max-w-md w-full space-y-6">
        <h2 class="text-center text-3xl font-extrabold text-gray-900">Admin Console</h2>
        {{template "alerts" .}}
        <form method="POST" action="/admin/login" class="mt-8 space-y-4">
            <input name="email" type="email" required placeholder="Email address"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300">
            <input name="password" type="password" required placeholder="Password"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300">
            <button type="submit" class="w-full py-2 px-4 rounded-md text-white bg-gray-900 hover:bg-gray-700">
                Sign in
            </button>
        </form>
    </div>
</div>
{{end}}`,

	"admin/stats": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900">Platform Overview</h1>
    <div class="mt-6 grid grid-cols-1 gap-5 sm:grid-cols-2 lg:grid-cols-4">
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Total users</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">{{comma .Stats.TotalUsers}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Referral earnings paid</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">${{formatFloat .Stats.TotalReferralEarnings}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Pending withdrawals</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">{{comma .Stats.PendingWithdrawalsCount}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Protocol balance</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">${{formatFloat .Stats.ProtocolBalance}}</dd>
        </div>
    </div>
    <div class="mt-6 flex gap-4">
        <a href="/admin/users" class="py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Users</a>
        <a href="/admin/withdrawals" class="py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Withdrawals</a>
        <a href="/admin/kyc" class="py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">KYC Review</a>
        <a href="/admin/transactions" class="py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Transactions</a>
    </div>
</div>
{{end}}`,

	"admin/users": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900">Users</h1>
    {{template "alerts" .}}

    <div class="mt-6 bg-white shadow rounded-lg p-5">
        <h3 class="text-lg font-medium text-gray-900">Create account</h3>
        <form method="POST" action="/admin/users" class="mt-4 grid grid-cols-1 gap-4 sm:grid-cols-3">
            <input name="email" type="email" required placeholder="Email"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="username" type="text" required placeholder="Username"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="password" type="password" required placeholder="Password"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="first_name" type="text" placeholder="First name"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <input name="last_name" type="text" placeholder="Last name"
                   class="rounded-md px-3 py-2 border border-gray-300">
            <button type="submit" class="py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Create</button>
        </form>
    </div>

    <div class="mt-6 bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">User</th>
                    <th class="px-6 py-3 text-right text-xs font-medium text-gray-500 uppercase">Balance</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Status</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Withdrawals</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Actions</th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Users}}
                <tr>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <div class="text-sm font-medium text-gray-900">{{.DisplayName}}</div>
                        <div class="text-sm text-gray-500">{{.Email}}</div>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-right text-gray-900">${{formatAmount .Balance}}</td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="px-2 py-1 text-xs rounded-full {{statusBadge (printf "%s" .Status)}}">{{.Status}}</span>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="px-2 py-1 text-xs rounded-full {{statusBadge (printf "%s" .WithdrawalStatus)}}">{{.WithdrawalStatus}}</span>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm">
                        <form method="POST" action="/admin/users/{{.ID}}" class="flex gap-2">
                            {{if eq (printf "%s" .Status) "frozen"}}
                            <input type="hidden" name="status" value="active">
                            <button type="submit" class="text-green-600 hover:text-green-800">Unfreeze</button>
                            {{else}}
                            <input type="hidden" name="status" value="frozen">
                            <button type="submit" class="text-red-600 hover:text-red-800">Freeze</button>
                            {{end}}
                        </form>
                    </td>
                </tr>
                {{end}}
            </tbody>
        </table>
    </div>
</div>
{{end}}`,

	"admin/withdrawals": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900">Withdrawals ({{comma .Pending}} pending)</h1>
    {{template "alerts" .}}

    <div class="mt-6 bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Member</th>
                    <th class="px-6 py-3 text-right text-xs font-medium text-gray-500 uppercase">Amount</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Bank details</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Status</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Actions</th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Withdrawals}}
                <tr>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <div class="text-sm font-medium text-gray-900">{{.UserName}}</div>
                        <div class="text-sm text-gray-500">{{.UserEmail}}</div>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-right text-gray-900">${{formatAmount .Amount}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.BankName}} &middot; {{.AccountNumber}} &middot; {{.AccountName}}</td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="px-2 py-1 text-xs rounded-full {{statusBadge (printf "%s" .Status)}}">{{.Status}}</span>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm">
                        {{if eq (printf "%s" .Status) "pending"}}
                        <div class="flex gap-3">
                            <form method="POST" action="/admin/withdrawals/{{.ID}}/approve">
                                <button type="submit" class="text-green-600 hover:text-green-800">Approve</button>
                            </form>
                            <form method="POST" action="/admin/withdrawals/{{.ID}}/deny" class="flex gap-2">
                                <input name="reason" type="text" placeholder="Reason"
                                       class="rounded-md px-2 py-1 border border-gray-300 text-xs">
                                <button type="submit" class="text-red-600 hover:text-red-800">Deny</button>
                            </form>
                        </div>
                        {{end}}
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="5" class="px-6 py-8 text-center text-sm text-gray-500">No withdrawal requests</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>
</div>
{{end}}`,

	"admin/kyc": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900">KYC Review Queue</h1>
    {{template "alerts" .}}

    <div class="mt-6 space-y-4">
        {{range .Requests}}
        <div class="bg-white shadow rounded-lg p-5">
            <div class="flex justify-between">
                <div>
                    <h3 class="text-sm font-medium text-gray-900">{{.UserName}} &lt;{{.UserEmail}}&gt;</h3>
                    <p class="mt-1 text-sm text-gray-500">{{.Address}}, {{.City}} {{.PostalCode}}, {{.Country}}</p>
                    <p class="mt-1 text-xs text-gray-400">Submitted {{.DateSubmitted}}</p>
                </div>
                {{if .DocumentURL}}
                <a href="{{.DocumentURL}}" target="_blank" rel="noopener"
                   class="text-sm text-indigo-600 hover:text-indigo-500">View document</a>
                {{end}}
            </div>
            <div class="mt-4 flex gap-3">
                <form method="POST" action="/admin/kyc/{{.UserID}}">
                    <input type="hidden" name="action" value="approve">
                    <button type="submit" class="py-1 px-3 rounded-md text-white bg-green-600 hover:bg-green-700 text-sm">Approve</button>
                </form>
                <form method="POST" action="/admin/kyc/{{.UserID}}" class="flex gap-2">
                    <input type="hidden" name="action" value="reject">
                    <input name="reason" type="text" required placeholder="Rejection reason"
                           class="rounded-md px-2 py-1 border border-gray-300 text-sm">
                    <button type="submit" class="py-1 px-3 rounded-md text-white bg-red-600 hover:bg-red-700 text-sm">Reject</button>
                </form>
            </div>
        </div>
        {{else}}
        <p class="text-sm text-gray-500">The review queue is empty.</p>
        {{end}}
    </div>
</div>
{{end}}`,

	"admin/transactions": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900">Platform Transactions</h1>

    <div class="mt-6 bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Date</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Member</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Type</th>
                    <th class="px-6 py-3 text-right text-xs font-medium text-gray-500 uppercase">Amount</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Status</th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Transactions}}
                <tr>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{formatTime .CreatedAt}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">
                        {{if .User}}{{.User.Name}} <span class="text-gray-500">{{.User.Email}}</span>{{else}}-{{end}}
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900 capitalize">{{.Type}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-right text-gray-900">${{formatAmount .Amount}}</td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="px-2 py-1 text-xs rounded-full {{statusBadge (printf "%s" .Status)}}">{{.Status}}</span>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="5" class="px-6 py-8 text-center text-sm text-gray-500">No transactions</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    <div class="mt-4 flex justify-between text-sm">
        {{if .HasPrev}}
        <a href="/admin/transactions?page={{sub .Page 1}}" class="text-indigo-600 hover:text-indigo-500">&larr; Previous</a>
        {{else}}<span></span>{{end}}
        <span class="text-gray-500">Page {{.Page}} of {{.TotalPages}}</span>
        {{if .HasNext}}
        <a href="/admin/transactions?page={{add .Page 1}}" class="text-indigo-600 hover:text-indigo-500">Next &rarr;</a>
        {{else}}<span></span>{{end}}
    </div>
</div>
{{end}}`,
}
