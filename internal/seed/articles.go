package seed

import (
	"bloodconnect/internal/utils"
	"bloodconnect/pkg/types"
	"context"
)

func Articles() []*types.Article {
	articles := []*types.Article{
		{
			ID:            "article1",
			Slug:          "importance-of-blood-donation",
			Title:         "The Importance of Blood Donation",
			Excerpt:       "Learn why donating blood is crucial for saving lives and supporting your community. Every drop counts!",
			Content:       "Detailed content about the importance of blood donation... Blood transfusions are needed for many reasons, including surgeries, cancer treatment, chronic illnesses, and traumatic injuries. Whether a patient receives whole blood, red cells, platelets or plasma, this life-saving care starts with one person making a generous donation.",
			ImageURL:      "https://placehold.co/600x400.png",
			Author:        utils.StringPtr("Dr. Emily Carter"),
			DatePublished: utils.StringPtr("2024-07-01"),
			Category:      utils.StringPtr("General Information"),
		},
		{
			ID:            "article2",
			Slug:          "what-to-expect-when-donating",
			Title:         "What to Expect When Donating Blood",
			Excerpt:       "A step-by-step guide to the blood donation process, from registration to post-donation care.",
			Content:       "Detailed content about the donation process... The process includes registration, a mini-physical, the donation itself (which takes about 8-10 minutes), and then refreshments. You should feel proud of yourself!",
			ImageURL:      "https://placehold.co/600x400.png",
			Author:        utils.StringPtr("BloodConnect Staff"),
			DatePublished: utils.StringPtr("2024-06-15"),
			Category:      utils.StringPtr("Process"),
		},
		{
			ID:            "article3",
			Slug:          "benefits-of-donating-blood",
			Title:         "The Surprising Benefits of Donating Blood",
			Excerpt:       "Beyond saving lives, discover the personal health benefits that can come from regular blood donation.",
			Content:       "Detailed content about benefits... Donating blood can help reveal potential health problems, reduce harmful iron stores, and may lower your risk of heart attack and cancer. Plus, it gives you a great feeling of contribution.",
			ImageURL:      "https://placehold.co/600x400.png",
			Author:        utils.StringPtr("Dr. Alan Grant"),
			DatePublished: utils.StringPtr("2024-05-20"),
			Category:      utils.StringPtr("Health & Wellness"),
		},
	}

	for i, a := range articles {
		a.DisplayOrder = i + 1
	}

	return articles
}

type ArticleSyncer interface {
	Articles(ctx context.Context) ([]*types.Article, error)
	UpsertArticle(ctx context.Context, article *types.Article) error
	DeleteArticle(ctx context.Context, id string) error
}

func SeedArticles(ctx context.Context, repo ArticleSyncer) error {
	articles := Articles()

	existing, err := repo.Articles(ctx)
	if err != nil {
		return err
	}

	existingIDs := make([]string, 0, len(existing))
	for _, a := range existing {
		existingIDs = append(existingIDs, a.ID)
	}

	seedIDs := make([]string, 0, len(articles))
	for _, a := range articles {
		seedIDs = append(seedIDs, a.ID)
	}

	return syncRecords(ctx, "article", seedIDs, existingIDs, repo.DeleteArticle, func(ctx context.Context, i int) error {
		return repo.UpsertArticle(ctx, articles[i])
	})
}
