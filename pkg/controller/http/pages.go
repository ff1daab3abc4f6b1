package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/domain/model/audit"
	"github.com/vantis-uk/vantis/pkg/utils/errutil"
)

//go:embed templates/*.html
var templateFS embed.FS

type sitePage struct {
	Path     string
	Template string
	Title    string
}

var sitePages = []sitePage{
	{Path: "/", Template: "home", Title: "Vantis"},
	{Path: "/companies", Template: "companies", Title: "For Companies"},
	{Path: "/talent", Template: "talent", Title: "For Talent"},
	{Path: "/solution", Template: "solution", Title: "Our Solution"},
	{Path: "/audit", Template: "audit", Title: "IR35 Audit"},
	{Path: "/about", Template: "about", Title: "About Us"},
	{Path: "/contact", Template: "contact", Title: "Contact Us"},
}

// service is one entry of the staffing catalogue shown on the landing and companies pages.
type service struct {
	Slug    string
	Name    string
	Summary string
}

var serviceCatalogue = []service{
	{Slug: "social", Name: "Social Media", Summary: "Amplify your brand voice. Our social media experts create engaging content that converts followers into customers."},
	{Slug: "va", Name: "Virtual Assistants", Summary: "Reclaim your time. Delegate administrative tasks to a dedicated VA and focus on what truly matters."},
	{Slug: "data", Name: "Data Entry", Summary: "Ensure accuracy and efficiency. Our specialists handle your data with precision, powering your business intelligence."},
	{Slug: "marketing", Name: "Marketing", Summary: "Drive measurable growth. From strategy to execution, our marketing pros become your engine for expansion."},
	{Slug: "design", Name: "Graphic Design", Summary: "Captivate your audience. Get stunning visuals that define your brand and make a lasting impression."},
	{Slug: "tech", Name: "Tech Specialists", Summary: "Build with the best. Access skilled developers and tech experts to bring your digital products to life."},
}

type pageData struct {
	Page      sitePage
	Nav       []sitePage
	Services  []service
	Questions []audit.Question
}

type pageRenderer struct {
	bank      *audit.QuestionBank
	templates map[string]*template.Template
}

// newPageRenderer parses every page together with the shared layout
func newPageRenderer(bank *audit.QuestionBank) (*pageRenderer, error) {
	p := &pageRenderer{
		bank:      bank,
		templates: make(map[string]*template.Template, len(sitePages)),
	}
	for _, page := range sitePages {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page.Template+".html")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse page template", goerr.V("template", page.Template))
		}
		p.templates[page.Template] = tmpl
	}
	return p, nil
}

func (p *pageRenderer) handler(page sitePage) http.HandlerFunc {
	tmpl := p.templates[page.Template]
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{
			Page:      page,
			Nav:       sitePages,
			Services:  serviceCatalogue,
			Questions: p.bank.Questions(),
		}

		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to render page", goerr.V("template", page.Template)), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes()) //nolint:errcheck // header already committed
	}
}
