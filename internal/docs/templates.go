package docs

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// renderMarkdown converts asset markdown to HTML. Conversion failures fall
// back to escaped preformatted text so a bad asset never blanks a page.
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(src) + "</pre>")
	}
	return template.HTML(buf.String())
}

var pageTemplates = template.Must(template.New("docs").Funcs(template.FuncMap{
	"markdown": renderMarkdown,
	"inc":      func(i int) int { return i + 1 },
}).Parse(pageTemplateText))

const pageTemplateText = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Georgia, 'Times New Roman', serif; color: #1a1a2e; margin: 0; }
  .page { width: 794px; margin: 0 auto; padding: 48px 56px; box-sizing: border-box; }
  h1 { font-size: 30px; border-bottom: 3px solid #e3b341; padding-bottom: 10px; }
  h2 { font-size: 22px; color: #30305a; margin-top: 28px; }
  h3 { font-size: 17px; color: #45456e; }
  p, li { font-size: 14px; line-height: 1.6; }
  table { width: 100%; border-collapse: collapse; margin: 14px 0; }
  th, td { border: 1px solid #c9c9d9; padding: 8px 10px; font-size: 13px; text-align: left; }
  th { background: #f3f1e7; }
  .price { font-size: 26px; color: #8c6a00; font-weight: bold; }
  .tagline { font-style: italic; color: #666688; }
  .stack-item { border-left: 4px solid #e3b341; padding: 6px 14px; margin: 10px 0; background: #fbfaf4; }
  .cover { text-align: center; padding-top: 140px; }
  .badge { display: inline-block; background: #30305a; color: #fff; padding: 3px 12px; border-radius: 10px; font-size: 12px; }
</style>
</head>
<body><main class="page">{{.Body}}</main></body>
</html>{{end}}

{{define "offer-stack"}}
<h2>{{.Name}} <span class="price">{{.Price}}</span></h2>
{{range .Stack}}
<div class="stack-item">
  <h3>{{.Solution}}</h3>
  <p><strong>Solves:</strong> {{.Problem}}</p>
  <p><strong>Value:</strong> {{.Value}}</p>
  {{if .Asset}}<p class="badge">Includes asset: {{.Asset.Name}}</p>{{end}}
</div>
{{end}}
{{if .Guarantee}}<p><strong>Guarantee:</strong> {{.Guarantee}}</p>{{end}}
{{end}}

{{define "full"}}
<h1>Your Business Playbook</h1>
<p class="tagline">{{.BusinessData.BusinessType}} &middot; {{.BusinessData.Location}}</p>

<h2>Diagnosis</h2>
<p><strong>Stage:</strong> {{.Playbook.Diagnosis.CurrentStage}}</p>
<p><strong>Your role:</strong> {{.Playbook.Diagnosis.YourRole}}</p>
<h3>Constraints holding you back</h3>
<ul>{{range .Playbook.Diagnosis.Constraints}}<li>{{.}}</li>{{end}}</ul>
<h3>Actions to win</h3>
<ul>{{range .Playbook.Diagnosis.ActionsToWin}}<li>{{.}}</li>{{end}}</ul>

<h2>{{.Playbook.MoneyModel.Title}}</h2>
<p>{{.Playbook.MoneyModel.Description}}</p>
<table>
<tr><th>#</th><th>Step</th><th>Offer</th><th>Price</th></tr>
{{range .Playbook.MoneyModel.Steps}}
<tr><td>{{.StepNumber}}</td><td>{{.Title}}</td><td>{{.OfferName}}</td><td>{{.Price}}</td></tr>
{{end}}
</table>

{{template "offer-stack" .Playbook.Offer1}}
{{template "offer-stack" .Playbook.Offer2}}

<h2>Downsell</h2>
<p>{{.Playbook.Downsell.Rationale}}</p>
{{template "offer-stack" .Playbook.Downsell.Offer}}

<h2>Marketing Model</h2>
{{range .Playbook.MarketingModel.Steps}}
<h3>{{.Method}}</h3>
<p>{{.Details}}</p>
<p class="tagline">{{.Example}}</p>
{{end}}

<h2>{{.Playbook.SalesFunnel.Title}}</h2>
<table>
<tr><th>Stage</th><th>Goal</th><th>Actions</th></tr>
{{range .Playbook.SalesFunnel.Stages}}
<tr><td>{{.Name}}</td><td>{{.Goal}}</td><td>{{.Actions}}</td></tr>
{{end}}
</table>

<h2>Profit Path</h2>
<table>
<tr><th>Milestone</th><th>Target</th><th>Actions</th></tr>
{{range .Playbook.ProfitPath.Milestones}}
<tr><td>{{.Milestone}}</td><td>{{.Target}}</td><td>{{.Actions}}</td></tr>
{{end}}
</table>
{{end}}

{{define "kpi-dashboard"}}
<h1>KPI Dashboard</h1>
<p class="tagline">The numbers that tell you whether the plan is working.</p>
<table>
<tr><th>Metric</th><th>What it measures</th><th>Target</th></tr>
{{range .Playbook.KpiDashboard.Kpis}}
<tr><td>{{.Name}}</td><td>{{.Description}}</td><td>{{.Target}}</td></tr>
{{end}}
</table>
{{if .KpiHistory}}
<h2>Recent entries</h2>
<table>
<tr><th>Date</th><th>Values</th><th>Notes</th></tr>
{{range .KpiHistory}}
<tr><td>{{.Date}}</td><td>{{range $k, $v := .Values}}{{$k}}: {{$v}} {{end}}</td><td>{{.Notes}}</td></tr>
{{end}}
</table>
{{end}}
{{end}}

{{define "offer-presentation"}}
<div class="cover">
<h1>{{.Playbook.Offer1.Name}}</h1>
<p class="price">{{.Playbook.Offer1.Price}}</p>
<p class="tagline">Built for {{.BusinessData.TargetClient}}</p>
</div>
{{template "offer-stack" .Playbook.Offer1}}
{{template "offer-stack" .Playbook.Offer2}}
{{end}}

{{define "cfa-model"}}
<h1>{{.Playbook.MoneyModel.Title}}</h1>
<p>{{.Playbook.MoneyModel.Description}}</p>
{{range .Playbook.MoneyModel.Steps}}
<div class="stack-item">
<h3>Step {{.StepNumber}}: {{.Title}}</h3>
<p><strong>{{.OfferName}}</strong> at {{.Price}}</p>
<p>{{.Rationale}}</p>
</div>
{{end}}
{{end}}

{{define "landing-page"}}
<div class="cover">
<h1>{{.Playbook.Offer1.Name}}</h1>
<p class="tagline">For {{.BusinessData.TargetClient}} in {{.BusinessData.Location}}</p>
<p class="price">{{.Playbook.Offer1.Price}}</p>
</div>
<h2>What you get</h2>
<ul>{{range .Playbook.Offer1.Stack}}<li><strong>{{.Solution}}</strong> — {{.Value}}</li>{{end}}</ul>
{{if .Playbook.Offer1.Guarantee}}<h2>Our guarantee</h2><p>{{.Playbook.Offer1.Guarantee}}</p>{{end}}
{{end}}

{{define "downsell-pamphlet"}}
<div class="cover">
<h1>{{.Playbook.Downsell.Offer.Name}}</h1>
<p class="price">{{.Playbook.Downsell.Offer.Price}}</p>
</div>
<p>{{.Playbook.Downsell.Rationale}}</p>
{{template "offer-stack" .Playbook.Downsell.Offer}}
{{end}}

{{define "tripwire-followup"}}
<h1>Follow-Up Playbook</h1>
<p>You bought <strong>{{.Playbook.Downsell.Offer.Name}}</strong>. Here is the path from
there to <strong>{{.Playbook.Offer1.Name}}</strong>.</p>
<h2>The next step</h2>
{{template "offer-stack" .Playbook.Offer1}}
<h2>Why now</h2>
<ul>{{range .Playbook.Diagnosis.ActionsToWin}}<li>{{.}}</li>{{end}}</ul>
{{end}}

{{define "zip-guide"}}
<h1>Read Me First</h1>
<p class="tagline">Your complete playbook archive for {{.BusinessData.BusinessType}}.</p>
<h2>What is in this archive</h2>
<table>
<tr><th>Folder</th><th>Contents</th></tr>
<tr><td>00_START_HERE</td><td>This guide.</td></tr>
<tr><td>01_Core_Plan</td><td>The full playbook and your KPI dashboard.</td></tr>
<tr><td>02_Money_Models</td><td>The acquisition money model and the deep-dive guide.</td></tr>
<tr><td>03_Marketing_Materials</td><td>Offer presentation, landing page, downsell pamphlet, follow-up.</td></tr>
<tr><td>04_Asset_Library</td><td>One folder per offer with its complete bundle and every individual asset.</td></tr>
</table>
<h2>How to use it</h2>
<ol>
<li>Read the full playbook in 01_Core_Plan.</li>
<li>Pick the first money-model step and put its offer in front of ten people this week.</li>
<li>Track the KPI dashboard numbers daily.</li>
</ol>
{{end}}

{{define "single-asset"}}
<h1>{{.SingleAsset.Name}}</h1>
<p class="badge">{{.SingleAsset.Type}}</p>
{{markdown .SingleAsset.Content}}
{{end}}

{{define "asset-bundle"}}
<h1>{{.AssetBundle.Name}}</h1>
<p class="tagline">Complete asset bundle</p>
{{range .AssetBundle.Stack}}{{if .Asset}}
<h2>{{.Asset.Name}}</h2>
<p class="badge">{{.Asset.Type}}</p>
{{markdown .Asset.Content}}
{{end}}{{end}}
{{end}}

{{define "guide"}}
<h1>{{.Title}}</h1>
<p class="tagline">{{.Intro}}</p>
{{range .Sections}}
<h2>{{.Heading}}</h2>
<p>{{.Body}}</p>
{{if .Points}}<ul>{{range .Points}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{end}}
{{end}}
`
