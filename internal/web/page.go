package web

import (
	"html/template"
	"io"
	"strings"

	"animalbase/internal/domain/animals"
)

const (
	StarOn  = "⭐"
	StarOff = "☆"
)

var columnLabels = map[animals.SortKey]string{
	animals.SortName:   "Name",
	animals.SortDesc:   "Description",
	animals.SortType:   "Type",
	animals.SortAge:    "Age",
	animals.SortStar:   "Star",
	animals.SortWinner: "Winner",
}

type header struct {
	Key     animals.SortKey
	Label   string
	NextDir animals.Direction
}

type filterButton struct {
	Key    string
	Label  string
	Active bool
}

// PageData es todo lo que necesita el template. La página se reconstruye completa en cada request.
type PageData struct {
	Snap     animals.Snapshot
	Headers  []header
	Filters  []filterButton
	Conflict *animals.ConflictView
}

func newPageData(snap animals.Snapshot, conflict *animals.ConflictView) PageData {
	d := PageData{Snap: snap, Conflict: conflict}
	if !snap.Loaded {
		return d
	}

	for _, k := range animals.SortKeys {
		d.Headers = append(d.Headers, header{Key: k, Label: columnLabels[k], NextDir: snap.NextDir[k]})
	}

	d.Filters = append(d.Filters, filterButton{Key: animals.Wildcard, Label: "All", Active: snap.Filter == animals.Wildcard})
	for _, t := range snap.Types {
		if strings.TrimSpace(t) == "" {
			continue
		}
		d.Filters = append(d.Filters, filterButton{Key: t, Label: t, Active: snap.Filter == t})
	}
	return d
}

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"starGlyph": func(on bool) string {
		if on {
			return StarOn
		}
		return StarOff
	},
	"arrow": func(d animals.Direction) string {
		if d == animals.Asc {
			return "▲"
		}
		return "▼"
	},
}).Parse(pageHTML))

// Render escribe la página completa.
func Render(w io.Writer, d PageData) error {
	return pageTmpl.Execute(w, d)
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Animalbase</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
th, td { padding: .3rem .8rem; text-align: left; }
th button, td button { background: none; border: none; cursor: pointer; font: inherit; }
.filters button.active { font-weight: bold; text-decoration: underline; }
.loser { filter: grayscale(1); opacity: .3; }
.warnings { background: #fff3cd; padding: .5rem 1rem; }
.load-error { background: #f8d7da; padding: 1rem; }
#error { position: fixed; inset: 0; }
#error-shadow { position: absolute; inset: 0; background: rgba(0,0,0,.5); }
#error-dialog { position: relative; margin: 10% auto; width: 24rem; background: #fff; padding: 1rem; }
</style>
</head>
<body>
<h1>Animalbase</h1>
{{if not .Snap.Loaded}}
<div class="load-error" id="load-error">
  <h2>Could not load the animals</h2>
  <p>{{.Snap.LoadErr}}</p>
  <form method="post" action="/ui/reload"><button type="submit">Try again</button></form>
</div>
{{else}}
{{with .Snap.Warnings}}
<div class="warnings" id="load-warnings">
  <p>Some records were malformed and got default values:</p>
  <ul>{{range .}}<li>{{.}}</li>{{end}}</ul>
</div>
{{end}}
<form class="filters" method="post" action="/ui/filter">
  {{range .Filters}}<button type="submit" name="filter" value="{{.Key}}" data-filter="{{.Key}}"{{if .Active}} class="active"{{end}}>{{.Label}}</button>
  {{end}}
</form>
<form method="post" action="/ui/reload"><button type="submit">Reload</button></form>
<table id="list">
  <thead>
    <tr>
      {{range .Headers}}<th data-sort="{{.Key}}" data-sort-direction="{{.NextDir}}"><form method="post" action="/ui/sort"><button type="submit" name="sort" value="{{.Key}}">{{.Label}} {{arrow .NextDir}}</button></form></th>
      {{end}}
    </tr>
  </thead>
  <tbody>
    {{range .Snap.View}}<tr data-id="{{.ID}}">
      <td data-field="name">{{.Name}}</td>
      <td data-field="desc">{{.Desc}}</td>
      <td data-field="type">{{.Type}}</td>
      <td data-field="age">{{.Age}}</td>
      <td><form method="post" action="/ui/animals/{{.ID}}/star"><button type="submit" data-field="star">{{starGlyph .Star}}</button></form></td>
      <td><form method="post" action="/ui/animals/{{.ID}}/winner"><button type="submit" data-field="winner"{{if not .Winner}} class="loser"{{end}}>🏆</button></form></td>
    </tr>
    {{end}}
  </tbody>
</table>
<p>Showing {{len .Snap.View}} of {{.Snap.Total}}</p>
{{with .Conflict}}
<div id="error">
  <a id="error-shadow" href="/" aria-label="close"></a>
  <div id="error-dialog" data-kind="{{.Kind}}">
    <p id="error-text">{{.Message}}</p>
    <ul id="error-container">
      {{range .Winners}}<li>
        <span class="animal-name">{{.Label}}</span>
        <form method="post" action="/ui/winners/{{.ID}}/remove"><button type="submit">Remove winner</button></form>
      </li>
      {{end}}
    </ul>
  </div>
</div>
{{end}}
{{end}}
</body>
</html>
`
