// Package layout generates fixed HTML page scaffolds built from daisyUI
// components. The templates are static strings with a single title slot;
// there is no branching beyond the switch on the layout name.
package layout

import "strings"

// Names lists the supported layout names in catalog order.
var Names = []string{
	"saas",
	"blog",
	"social",
	"kanban",
	"inbox",
	"profile",
	"docs",
	"dashboard",
	"auth",
	"store",
}

// DefaultName is used when no layout name is given or the name is unknown.
const DefaultName = "saas"

const maxTitleLen = 100

const titleSlot = "{{title}}"

// Generate returns the HTML scaffold for the named layout with the
// sanitized title substituted in. Unknown names fall back to DefaultName.
func Generate(name, title string) string {
	t := Sanitize(title)
	var tpl string
	switch name {
	case "saas":
		tpl = saasTemplate
	case "blog":
		tpl = blogTemplate
	case "social":
		tpl = socialTemplate
	case "kanban":
		tpl = kanbanTemplate
	case "inbox":
		tpl = inboxTemplate
	case "profile":
		tpl = profileTemplate
	case "docs":
		tpl = docsTemplate
	case "dashboard":
		tpl = dashboardTemplate
	case "auth":
		tpl = authTemplate
	case "store":
		tpl = storeTemplate
	default:
		tpl = saasTemplate
	}
	return strings.ReplaceAll(tpl, titleSlot, t)
}

// Known reports whether name is a supported layout.
func Known(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Sanitize keeps letters, digits, whitespace, hyphens, and underscores from
// the title and caps it at 100 runes. Titles end up inside HTML text nodes.
func Sanitize(title string) string {
	var b strings.Builder
	n := 0
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == ' ', r == '\t', r == '-', r == '_':
			b.WriteRune(r)
			n++
		}
		if n >= maxTitleLen {
			break
		}
	}
	return b.String()
}

const saasTemplate = `<div class="min-h-screen bg-base-100">
  <div class="navbar bg-base-100 sticky top-0 z-50 border-b border-base-200">
    <div class="flex-1"><a class="btn btn-ghost text-xl font-bold">{{title}}</a></div>
    <div class="flex-none gap-2">
      <ul class="menu menu-horizontal px-1 hidden sm:flex"><li><a>Features</a></li><li><a>Pricing</a></li></ul>
      <button class="btn btn-primary">Get Started</button>
    </div>
  </div>
  <div class="hero min-h-[80vh] bg-base-200">
    <div class="hero-content text-center">
      <div class="max-w-2xl">
        <h1 class="text-5xl font-extrabold">Build faster with <span class="text-primary">{{title}}</span></h1>
        <p class="py-6 text-xl text-base-content/80">The ultimate scaffolding engine for modern web apps.</p>
        <button class="btn btn-primary btn-lg">Start Free Trial</button>
      </div>
    </div>
  </div>
  <div class="py-24 bg-base-100">
    <div class="container mx-auto px-4">
      <h2 class="text-3xl font-bold text-center mb-12">Everything you need</h2>
      <div class="grid grid-cols-1 md:grid-cols-3 gap-8">
        <div class="card bg-base-200 shadow-sm"><div class="card-body"><h3 class="card-title">Fast</h3><p>Optimized for speed.</p></div></div>
        <div class="card bg-base-200 shadow-sm"><div class="card-body"><h3 class="card-title">Secure</h3><p>Bank-grade security.</p></div></div>
        <div class="card bg-base-200 shadow-sm"><div class="card-body"><h3 class="card-title">Themable</h3><p>daisyUI themes.</p></div></div>
      </div>
    </div>
  </div>
  <footer class="footer p-10 bg-base-300"><nav><header class="footer-title">Company</header><a class="link link-hover">About</a></nav></footer>
</div>`

const blogTemplate = `<div class="min-h-screen bg-base-100">
  <div class="navbar bg-base-100 border-b border-base-200">
    <div class="flex-1"><a class="btn btn-ghost text-2xl font-serif">{{title}}</a></div>
  </div>
  <div class="container mx-auto px-4 py-12">
    <div class="card lg:card-side bg-base-200 shadow-xl mb-16">
      <figure class="lg:w-1/2"><img src="https://picsum.photos/800/600" class="h-full object-cover" /></figure>
      <div class="card-body lg:w-1/2"><h2 class="card-title text-4xl font-serif">Featured Article</h2><p>Exploring cutting-edge patterns.</p><button class="btn btn-primary">Read</button></div>
    </div>
    <div class="grid md:grid-cols-3 gap-8">
      <div class="card bg-base-200"><div class="card-body"><div class="badge badge-ghost mb-2">Tech</div><h3 class="card-title">Post Title</h3><p>Post excerpt...</p></div></div>
    </div>
  </div>
</div>`

const socialTemplate = `<div class="min-h-screen bg-base-100 flex">
  <div class="w-64 hidden lg:block p-4 border-r border-base-200">
    <div class="text-2xl font-bold text-primary mb-4">{{title}}</div>
    <ul class="menu"><li><a class="active">Home</a></li><li><a>Notifications</a></li><li><a>Messages</a></li></ul>
    <button class="btn btn-primary w-full mt-8">Post</button>
  </div>
  <div class="flex-1 max-w-2xl border-r border-base-200">
    <div class="sticky top-0 bg-base-100/80 backdrop-blur p-4 border-b font-bold text-xl">Home</div>
    <div class="p-4 border-b"><textarea class="textarea w-full" placeholder="What's happening?"></textarea><button class="btn btn-primary btn-sm float-right">Post</button></div>
    <div class="p-4 border-b hover:bg-base-200/50">
      <div class="flex gap-4"><div class="avatar"><div class="w-12 rounded-full"><img src="https://picsum.photos/100" /></div></div>
      <div><span class="font-bold">User</span> <span class="opacity-50">@user 2h</span><p class="mt-1">Just shipped!</p></div></div>
    </div>
  </div>
</div>`

const kanbanTemplate = `<div class="h-screen flex flex-col bg-base-200">
  <div class="navbar bg-base-100 shadow-sm"><div class="flex-1"><h1 class="text-xl font-bold">{{title}}</h1></div><button class="btn btn-primary btn-sm">Share</button></div>
  <div class="flex-1 overflow-x-auto p-6">
    <div class="flex gap-6">
      <div class="w-80 shrink-0"><h3 class="font-bold mb-3">To Do <span class="badge badge-sm">3</span></h3>
        <div class="card bg-base-100 p-4 mb-2"><div class="badge badge-warning mb-2">Design</div><p class="font-semibold">Create mockups</p></div>
        <button class="btn btn-ghost btn-block">+ Add Task</button>
      </div>
      <div class="w-80 shrink-0"><h3 class="font-bold mb-3">In Progress <span class="badge badge-sm">1</span></h3>
        <div class="card bg-base-100 p-4"><div class="badge badge-info mb-2">Dev</div><p class="font-semibold">Implement Auth</p><progress class="progress progress-primary mt-2" value="40" max="100"></progress></div>
      </div>
      <div class="w-80 shrink-0"><h3 class="font-bold mb-3">Done <span class="badge badge-sm">2</span></h3>
        <div class="card bg-base-100 p-4 opacity-60"><p class="line-through">Setup Repo</p></div>
      </div>
    </div>
  </div>
</div>`

const inboxTemplate = `<div class="h-screen flex bg-base-100">
  <div class="w-64 border-r flex flex-col">
    <div class="p-4 font-bold text-xl"><div class="badge badge-primary badge-lg mr-2">M</div>{{title}}</div>
    <button class="btn btn-primary mx-4">Compose</button>
    <ul class="menu flex-1 p-2"><li><a class="active">Inbox <span class="badge">4</span></a></li><li><a>Sent</a></li><li><a>Drafts</a></li></ul>
  </div>
  <div class="w-80 border-r overflow-y-auto">
    <input class="input input-bordered w-full m-2" placeholder="Search" style="width:calc(100%-1rem)" />
    <div class="p-4 hover:bg-base-200 cursor-pointer border-b"><span class="font-bold">Sender</span><div class="font-semibold truncate">Subject line</div><div class="text-sm opacity-60 truncate">Preview text...</div></div>
  </div>
  <div class="flex-1 flex flex-col">
    <div class="p-6 border-b"><h2 class="text-2xl font-bold">Email Subject</h2><div class="mt-2 text-sm">From: <span class="font-bold">sender@example.com</span></div></div>
    <div class="p-6 flex-1"><p>Email content goes here...</p></div>
  </div>
</div>`

const profileTemplate = `<div class="min-h-screen bg-base-200 p-4 md:p-8">
  <div class="max-w-4xl mx-auto">
    <h1 class="text-3xl font-bold mb-8">{{title}}</h1>
    <div class="flex flex-col md:flex-row gap-6">
      <ul class="menu bg-base-100 rounded-box w-full md:w-64 shadow-sm"><li><a class="active">General</a></li><li><a>Account</a></li><li><a>Notifications</a></li><li><a class="text-error">Danger Zone</a></li></ul>
      <div class="flex-1 card bg-base-100 shadow-sm">
        <div class="card-body">
          <h2 class="card-title mb-4">Profile Information</h2>
          <div class="flex items-center gap-4 mb-6"><div class="avatar placeholder"><div class="bg-neutral text-neutral-content rounded-full w-24"><span class="text-3xl">U</span></div></div><button class="btn btn-sm btn-outline">Change Avatar</button></div>
          <div class="form-control mb-4"><label class="label">Name</label><input class="input input-bordered" value="User Name" /></div>
          <div class="form-control mb-4"><label class="label">Email</label><input class="input input-bordered" value="user@example.com" /></div>
          <div class="form-control mb-4"><label class="label">Bio</label><textarea class="textarea textarea-bordered">Bio here...</textarea></div>
          <button class="btn btn-primary">Save Changes</button>
        </div>
      </div>
    </div>
  </div>
</div>`

const docsTemplate = `<div class="drawer lg:drawer-open">
  <input id="docs-drawer" type="checkbox" class="drawer-toggle" />
  <div class="drawer-content">
    <div class="navbar bg-base-100 border-b lg:hidden"><label for="docs-drawer" class="btn btn-ghost">Menu</label><span class="font-bold">{{title}}</span></div>
    <div class="p-8 max-w-4xl mx-auto">
      <div class="text-sm breadcrumbs mb-4"><ul><li><a>Docs</a></li><li>Installation</li></ul></div>
      <h1 class="text-4xl font-bold mb-6">Installation</h1>
      <p class="mb-4 text-lg">Get started in minutes.</p>
      <div class="mockup-code mb-6"><pre data-prefix="$"><code>npm install package-name</code></pre></div>
      <h2 class="text-2xl font-bold mt-8 mb-4">Configuration</h2>
      <p>Add to your config file.</p>
      <div class="alert alert-info mt-8"><span>Requires Node.js 18+</span></div>
    </div>
  </div>
  <div class="drawer-side border-r"><label for="docs-drawer" class="drawer-overlay"></label>
    <ul class="menu p-4 w-80 min-h-full bg-base-100"><li class="menu-title">{{title}} Docs</li><li><a class="active">Installation</a></li><li><a>Usage</a></li><li><a>Components</a></li></ul>
  </div>
</div>`

const dashboardTemplate = `<div class="drawer lg:drawer-open">
  <input id="dash-drawer" type="checkbox" class="drawer-toggle" />
  <div class="drawer-content flex flex-col">
    <div class="navbar bg-base-300"><div class="lg:hidden"><label for="dash-drawer" class="btn btn-ghost">Menu</label></div><div class="flex-1 font-bold text-xl px-4">{{title}}</div></div>
    <div class="p-6">
      <h2 class="text-2xl font-bold mb-6">Dashboard</h2>
      <div class="stats shadow mb-6 w-full">
        <div class="stat"><div class="stat-title">Users</div><div class="stat-value">31K</div><div class="stat-desc">+22%</div></div>
        <div class="stat"><div class="stat-title">Revenue</div><div class="stat-value">$12.5K</div><div class="stat-desc">+14%</div></div>
        <div class="stat"><div class="stat-title">Orders</div><div class="stat-value">1,234</div><div class="stat-desc">-3%</div></div>
      </div>
      <div class="card bg-base-100 shadow"><div class="card-body"><h3 class="card-title">Recent Activity</h3><p>Activity items go here...</p></div></div>
    </div>
  </div>
  <div class="drawer-side"><label for="dash-drawer" class="drawer-overlay"></label>
    <ul class="menu p-4 w-80 min-h-full bg-base-200"><li class="menu-title">Menu</li><li><a class="active">Overview</a></li><li><a>Analytics</a></li><li><a>Settings</a></li></ul>
  </div>
</div>`

const authTemplate = `<div class="hero min-h-screen bg-base-200">
  <div class="card w-full max-w-sm shadow-2xl bg-base-100">
    <form class="card-body">
      <h1 class="text-2xl font-bold text-center">{{title}}</h1>
      <div class="form-control"><label class="label"><span class="label-text">Email</span></label><input type="email" class="input input-bordered" required /></div>
      <div class="form-control"><label class="label"><span class="label-text">Password</span></label><input type="password" class="input input-bordered" required /><label class="label"><a class="label-text-alt link link-hover">Forgot password?</a></label></div>
      <div class="form-control mt-6"><button class="btn btn-primary">Login</button></div>
      <div class="divider">OR</div>
      <button class="btn btn-outline">Sign up</button>
    </form>
  </div>
</div>`

const storeTemplate = `<div class="min-h-screen bg-base-100">
  <div class="navbar bg-base-100 border-b"><div class="flex-1"><a class="btn btn-ghost text-xl">{{title}}</a></div>
    <div class="flex-none"><button class="btn btn-ghost btn-circle"><span class="indicator"><span class="badge badge-sm indicator-item">3</span>Cart</span></button></div>
  </div>
  <div class="hero bg-base-200 py-16"><div class="hero-content text-center"><div><h1 class="text-5xl font-bold">{{title}}</h1><p class="py-6">Discover amazing products</p><button class="btn btn-primary">Shop Now</button></div></div></div>
  <div class="container mx-auto p-8">
    <h2 class="text-2xl font-bold mb-6">Featured Products</h2>
    <div class="grid grid-cols-1 md:grid-cols-3 lg:grid-cols-4 gap-6">
      <div class="card bg-base-100 shadow"><figure><img src="https://picsum.photos/400/300" /></figure><div class="card-body"><h3 class="card-title">Product</h3><p>$99.00</p><button class="btn btn-primary btn-sm">Add to Cart</button></div></div>
    </div>
  </div>
</div>`
