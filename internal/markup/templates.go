package markup

import (
	"html/template"

	"github.com/five82/podium/internal/state"
)

const stylesheet = `
.leaderboard-widget { width: 350px; background: linear-gradient(135deg, #667eea, #764ba2); border-radius: 16px; box-shadow: 0 10px 40px rgba(0,0,0,.35); font-family: system-ui, sans-serif; z-index: 1000; overflow: hidden; }
.leaderboard-embedded { position: absolute; top: 20px; right: 20px; }
.leaderboard-fixed { position: fixed; top: 20px; right: 20px; }
.leaderboard-header { display: flex; justify-content: space-between; align-items: center; padding: 16px; color: white; font-size: 20px; font-weight: 700; background: rgba(255,255,255,.1); }
.leaderboard-content { background: white; max-height: 420px; overflow-y: auto; padding: 12px; }
.leaderboard-content.hidden { display: none; }
.toggle-btn, .back-btn { background: rgba(255,255,255,.2); border: none; color: white; border-radius: 8px; cursor: pointer; }
.leaderboard-table { width: 100%; border-collapse: collapse; }
.leaderboard-table td, .leaderboard-table th { padding: 6px 8px; text-align: left; }
.leaderboard-table .rank { font-weight: 700; color: #764ba2; }
.leaderboard-table .score { text-align: right; font-variant-numeric: tabular-nums; }
.type-buttons { display: flex; gap: 8px; }
.type-btn, .submit-btn { flex: 1; padding: 10px; border: none; border-radius: 8px; background: #667eea; color: white; cursor: pointer; }
.delete-btn { background: #e03131; color: white; border: none; border-radius: 6px; cursor: pointer; }
.elementary-form .form-group { display: flex; flex-direction: column; margin-bottom: 8px; }
.loading { color: #868e96; }
.error { color: #e03131; }
`

// Partials share one template set; each widget fragment is rebuilt in full
// on every render.
const partials = `
{{define "stylesheet"}}<style id="{{.}}">{{stylesheet}}</style>
{{end}}

{{define "widget"}}<div class="leaderboard-widget {{.PlacementClass}}"{{if .HostID}} data-host="{{.HostID}}"{{end}} data-mode="{{.Mode}}">
  <div class="leaderboard-header">
    <div>
      {{if .BackVisible}}<button class="back-btn" data-action="back">← Back</button>{{end}}
      {{if .Open}}<span class="leaderboard-title">{{.Label}}</span>{{else}}<span class="leaderboard-preview">{{.Label}}</span>{{end}}
    </div>
    <button class="toggle-btn" data-action="toggle">{{if .Open}}−{{else}}+{{end}}</button>
  </div>
  <div class="leaderboard-content{{if not .Open}} hidden{{end}}">
    <div class="leaderboard-list">{{template "list" .}}</div>
  </div>
</div>
{{end}}

{{define "list"}}
{{- if eq .Kind "selector"}}{{template "selector" .}}
{{- else if eq .Kind "loading"}}<p class="loading">{{.Message}}</p>
{{- else if eq .Kind "error"}}<p class="error">{{.Message}}</p>
{{- else if eq .Kind "empty"}}<p>{{.Message}}</p>
{{- else if eq .Kind "global"}}{{template "global" .}}
{{- else if eq .Kind "elementary"}}{{template "elementary" .}}
{{- end}}
{{- end}}

{{define "selector"}}<div class="type-selection">
  <h3>Choose Leaderboard Type</h3>
  <div class="type-buttons">
    <button class="type-btn" data-mode="dynamic">Dynamic Leaderboard</button>
    <button class="type-btn" data-mode="elementary">Elementary Leaderboard</button>
  </div>
</div>{{end}}

{{define "global"}}<table class="leaderboard-table">
  <thead><tr><th>Rank</th><th>Player</th><th>Game</th><th>Score</th></tr></thead>
  <tbody>
{{- range $i, $e := .Global}}
    <tr><td class="rank">{{rank $i}}</td><td class="username">{{$e.User}}</td><td>{{$e.Game}}</td><td class="score">{{score $e.Score}}</td></tr>
{{- end}}
  </tbody>
</table>{{end}}

{{define "elementary"}}
{{- if .Entries}}<table class="leaderboard-table">
  <thead><tr><th>Rank</th><th>Player</th><th>Score</th><th>Action</th></tr></thead>
  <tbody>
{{- range $i, $e := .Entries}}
    <tr><td class="rank">{{rank $i}}</td><td class="username">{{$e.User}}</td><td class="score">{{score $e.Score}}</td><td><button class="delete-btn" data-id="{{$e.ID}}">Delete</button></td></tr>
{{- end}}
  </tbody>
</table>
{{end}}{{template "form" .}}{{end}}

{{define "form"}}<div class="elementary-form">
  <div class="form-group">
    <label>Player Name</label>
    <input type="text" name="player-name" placeholder="Enter name" />
  </div>
  <div class="form-group">
    <label>Score</label>
    <input type="number" name="player-score" placeholder="Enter score" />
  </div>
  <button class="submit-btn" data-action="submit">Add Score</button>
</div>{{end}}
`

var templates = template.Must(template.New("leaderboard").Funcs(template.FuncMap{
	"rank":  state.Rank,
	"score": state.FormatScore,
	// The stylesheet is a compile-time constant, never user input.
	"stylesheet": func() template.CSS { return template.CSS(stylesheet) },
}).Parse(partials))
