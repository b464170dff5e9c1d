package server

import "net/http"

const landingHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>daisy-docs-server</title>
<style>
  body { margin: 0; font-family: Georgia, "Times New Roman", serif; background: #fdf6ec; color: #3b2f2f; line-height: 1.6; }
  main { max-width: 640px; margin: 4rem auto; padding: 0 1.25rem; }
  h1 { font-size: 2rem; margin: 0; }
  h1::after { content: ""; display: block; width: 3rem; height: 4px; background: #e8674a; margin-top: 0.75rem; }
  .tagline { color: #7a6a5d; margin: 1rem 0 2.5rem; font-style: italic; }
  h2 { font-size: 0.8rem; font-family: ui-sans-serif, system-ui, sans-serif; text-transform: uppercase; letter-spacing: 0.12em; color: #a08b77; margin: 2rem 0 0.75rem; }
  pre { background: #3b2f2f; color: #fdf6ec; border-radius: 6px; padding: 1rem; overflow-x: auto; font-size: 0.8rem; }
  code { font-family: ui-monospace, "Cascadia Code", Consolas, monospace; }
  ul { list-style: none; padding: 0; margin: 0; }
  li { padding: 0.4rem 0; border-bottom: 1px dotted #d9c7b2; }
  li code { color: #b5482f; }
  a { color: #b5482f; }
</style>
</head>
<body>
<main>
  <h1>daisy-docs-server</h1>
  <p class="tagline">daisyUI component documentation, searchable through a line-oriented JSON tool protocol.</p>

  <h2>Try it</h2>
  <pre><code>curl -s localhost:8080/rpc -d '{"protocolVersion":"1.0","method":"tools/call","params":{"name":"search_docs","arguments":{"query":"button"}},"id":1}'</code></pre>

  <h2>Endpoints</h2>
  <ul>
    <li><code>POST /rpc</code> &mdash; one request envelope per body</li>
    <li><a href="/health"><code>GET /health</code></a> &mdash; health check</li>
    <li><a href="/metrics"><code>GET /metrics</code></a> &mdash; prometheus metrics</li>
  </ul>
</main>
</body>
</html>`

func landingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(landingHTML))
}
