// internal/app/system/sections/templates.go
package sections

import "html/template"

// sectionTmpl holds the markup for every section type. Kept inline rather
// than embedded: the fragments are small and versioned with their renderers.
var sectionTmpl = template.Must(template.New("sections").Parse(`
{{define "hero_slider"}}
<section class="section section-hero-slider" data-interval="{{.Interval}}">
  <div class="hero-slider">
    {{range $i, $s := .Slides}}
    <div class="hero-slide{{if eq $i 0}} is-active{{end}}"{{if $s.ImageURL}} style="background-image:url('{{$s.ImageURL}}')"{{end}}>
      <div class="hero-slide-inner">
        {{if $s.Title}}<h1 class="hero-title"{{if $s.TitleFontSize}} style="font-size:{{$s.TitleFontSize}}"{{end}}>{{$s.Title}}</h1>{{end}}
        {{if $s.Subtitle}}<p class="hero-subtitle"{{if $s.SubtitleFontSize}} style="font-size:{{$s.SubtitleFontSize}}"{{end}}>{{$s.Subtitle}}</p>{{end}}
        {{if $s.ButtonText}}<a class="btn btn-primary" href="{{$s.ButtonURL}}">{{$s.ButtonText}}</a>{{end}}
      </div>
    </div>
    {{end}}
  </div>
</section>
{{end}}

{{define "hero"}}
<section class="section section-hero"{{if .ImageURL}} style="background-image:url('{{.ImageURL}}')"{{end}}>
  <div class="hero-inner">
    {{if .Heading}}<h1 class="hero-title">{{.Heading}}</h1>{{end}}
    {{if .Subheading}}<p class="hero-subtitle">{{.Subheading}}</p>{{end}}
    {{if .ButtonText}}<a class="btn btn-primary" href="{{.ButtonURL}}">{{.ButtonText}}</a>{{end}}
  </div>
</section>
{{end}}

{{define "about"}}
<section class="section section-about">
  <div class="container">
    <h2 class="section-heading">{{.Heading}}</h2>
    <div class="about-row">
      {{if .ImageURL}}<div class="about-image"><img src="{{.ImageURL}}" alt="{{.Heading}}"></div>{{end}}
      <div class="about-body">{{.Body}}</div>
    </div>
  </div>
</section>
{{end}}

{{define "services_grid"}}
<section class="section section-services">
  <div class="container">
    <h2 class="section-heading">{{.Heading}}</h2>
    {{if .Subheading}}<p class="section-subheading">{{.Subheading}}</p>{{end}}
    <div class="services-grid">
      {{range .Cards}}
      <a class="service-card" href="{{.URL}}">
        {{if .Icon}}<span class="service-icon {{.Icon}}"></span>{{end}}
        <h3>{{.Title}}</h3>
        {{if .Teaser}}<p>{{.Teaser}}</p>{{end}}
      </a>
      {{end}}
    </div>
  </div>
</section>
{{end}}

{{define "stats"}}
<section class="section section-stats">
  <div class="container">
    {{if .Heading}}<h2 class="section-heading">{{.Heading}}</h2>{{end}}
    <div class="stats-row">
      {{range .Stats}}
      <div class="stat">
        <span class="stat-value">{{.Value}}{{.Suffix}}</span>
        <span class="stat-label">{{.Label}}</span>
      </div>
      {{end}}
    </div>
  </div>
</section>
{{end}}

{{define "testimonials"}}
<section class="section section-testimonials">
  <div class="container">
    <h2 class="section-heading">{{.Heading}}</h2>
    <div class="testimonials-row">
      {{range .Quotes}}
      <blockquote class="testimonial">
        <p>{{.Quote}}</p>
        <footer>{{.Author}}{{if .Role}}<span class="testimonial-role">{{.Role}}</span>{{end}}</footer>
      </blockquote>
      {{end}}
    </div>
  </div>
</section>
{{end}}

{{define "blog"}}
<section class="section section-blog">
  <div class="container">
    <h2 class="section-heading">{{.Heading}}</h2>
    <div class="blog-grid">
      {{range .Posts}}
      <a class="blog-card" href="{{.URL}}">
        {{if .CoverURL}}<img src="{{.CoverURL}}" alt="{{.Title}}">{{end}}
        {{if .Category}}<span class="blog-category">{{.Category}}</span>{{end}}
        <h3>{{.Title}}</h3>
        {{if .Excerpt}}<p>{{.Excerpt}}</p>{{end}}
      </a>
      {{end}}
    </div>
  </div>
</section>
{{end}}

{{define "client_logos"}}
<section class="section section-clients">
  <div class="container">
    <h2 class="section-heading">{{.Heading}}</h2>
    {{if .Subheading}}<p class="section-subheading">{{.Subheading}}</p>{{end}}
    <div class="client-logos">
      {{range .Logos}}
      {{if .Website}}<a href="{{.Website}}" rel="noopener" target="_blank"><img src="{{.LogoURL}}" alt="{{.Name}}" title="{{.Name}}"></a>
      {{else}}<img src="{{.LogoURL}}" alt="{{.Name}}" title="{{.Name}}">{{end}}
      {{end}}
    </div>
  </div>
</section>
{{end}}

{{define "map"}}
<section class="section section-map">
  <iframe src="{{.EmbedURL}}" style="width:100%;height:{{.Height}};border:0" loading="lazy" referrerpolicy="no-referrer-when-downgrade"></iframe>
</section>
{{end}}

{{define "text_block"}}
<section class="section section-text">
  <div class="container">
    {{if .Heading}}<h2 class="section-heading">{{.Heading}}</h2>{{end}}
    <div class="text-body">{{.Body}}</div>
  </div>
</section>
{{end}}
`))
