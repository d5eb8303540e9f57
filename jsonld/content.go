package jsonld

import (
	"strings"
)

// ArticleKind selects the Article subtype.
type ArticleKind string

const (
	KindArticle     ArticleKind = "Article"
	KindBlogPosting ArticleKind = "BlogPosting"
	KindNewsArticle ArticleKind = "NewsArticle"
)

// ArticleProps describes an article or blog post.
type ArticleProps struct {
	Kind          ArticleKind
	Headline      string
	Description   string
	URL           string
	Images        []string
	Author        Agent
	Publisher     Agent
	DatePublished string
	DateModified  string
	Keywords      []string
	Section       string
	WordCount     int
	InLanguage    string
}

// Article builds an Article, BlogPosting or NewsArticle document.
func (b Builder) Article(p ArticleProps) (Document, error) {
	kind := p.Kind
	if kind == "" {
		kind = KindArticle
	}
	if strings.TrimSpace(p.Headline) == "" {
		return nil, &ValidationError{Type: string(kind), Field: "headline"}
	}
	doc := Document{"@type": string(kind), "headline": p.Headline}
	setString(doc, "description", p.Description)
	if p.URL != "" {
		abs, err := b.urls.Absolute(p.URL)
		if err != nil {
			return nil, err
		}
		doc["url"] = abs
		doc["mainEntityOfPage"] = Document{"@type": "WebPage", "@id": abs}
	}
	if err := b.setURLs(doc, "image", p.Images); err != nil {
		return nil, err
	}
	if err := b.setAgent(doc, "author", p.Author, "Person"); err != nil {
		return nil, err
	}
	if err := b.setAgent(doc, "publisher", p.Publisher, "Organization"); err != nil {
		return nil, err
	}
	setString(doc, "datePublished", p.DatePublished)
	setString(doc, "dateModified", p.DateModified)
	if len(p.Keywords) > 0 {
		doc["keywords"] = strings.Join(p.Keywords, ", ")
	}
	setString(doc, "articleSection", p.Section)
	if p.WordCount > 0 {
		doc["wordCount"] = p.WordCount
	}
	setString(doc, "inLanguage", p.InLanguage)
	return WithContext(doc), nil
}

// BreadcrumbItem is one step of a breadcrumb trail. A zero Position is
// replaced with the item's 1-based index; Item may be empty for the
// current page.
type BreadcrumbItem struct {
	Name     string
	Item     string
	Position int
}

// Breadcrumb builds a BreadcrumbList document.
func (b Builder) Breadcrumb(items []BreadcrumbItem) (Document, error) {
	doc, err := b.breadcrumbList(items)
	if err != nil {
		return nil, err
	}
	return WithContext(doc), nil
}

func (b Builder) breadcrumbList(items []BreadcrumbItem) (Document, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Type: "BreadcrumbList", Field: "itemListElement"}
	}
	elements := make([]Document, 0, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return nil, &ValidationError{Type: "ListItem", Field: "name"}
		}
		pos := it.Position
		if pos == 0 {
			pos = i + 1
		}
		el := Document{"@type": "ListItem", "position": pos, "name": it.Name}
		if err := b.setURL(el, "item", it.Item); err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return Document{"@type": "BreadcrumbList", "itemListElement": elements}, nil
}

// FAQItem is one question with its answer.
type FAQItem struct {
	Question string
	Answer   string
}

// FAQ builds an FAQPage document. Questions keep their input order.
func (b Builder) FAQ(items []FAQItem) (Document, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Type: "FAQPage", Field: "mainEntity"}
	}
	questions := make([]Document, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Question) == "" {
			return nil, &ValidationError{Type: "Question", Field: "name"}
		}
		if strings.TrimSpace(it.Answer) == "" {
			return nil, &ValidationError{Type: "Answer", Field: "text"}
		}
		questions = append(questions, Document{
			"@type": "Question",
			"name":  it.Question,
			"acceptedAnswer": Document{
				"@type": "Answer",
				"text":  it.Answer,
			},
		})
	}
	return WithContext(Document{"@type": "FAQPage", "mainEntity": questions}), nil
}
