package renderer

import "github.com/etnz/stockio"

// NewsView is the news feed formatted for display.
type NewsView struct {
	Articles []NewsRow
}

// NewsRow is a single article.
type NewsRow struct {
	Title     string
	Summary   string
	Portal    string
	Published string
	Breaking  bool
}

// News renders the news feed to markdown.
func News(articles []stockio.NewsArticle) string {
	view := &NewsView{}
	for _, a := range articles {
		view.Articles = append(view.Articles, NewsRow{
			Title:     a.Title,
			Summary:   a.Summary,
			Portal:    a.Portal,
			Published: a.Published,
			Breaking:  a.Breaking,
		})
	}
	return renderTemplate("news", "news.md", nil, view)
}

// Profile renders the account profile to markdown.
func Profile(u stockio.User) string {
	data := struct {
		stockio.User
		Investment stockio.Money
		Profit     stockio.Money
	}{
		User:       u,
		Investment: stockio.M(u.TotalInvestment, "IDR"),
		Profit:     stockio.M(u.TotalProfit, "IDR"),
	}
	return renderTemplate("profile", "profile.md", nil, data)
}
