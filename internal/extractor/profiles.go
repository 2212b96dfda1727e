package extractor

// DefaultProfiles returns the built-in site profile table.
// Country-specific host tokens are listed before the generic ones they contain.
func DefaultProfiles() []SiteProfile {
	return []SiteProfile{
		{
			// Amazon Brasil, listed before amazon.com which it contains
			Host:      "amazon.com.br",
			StoreName: "Amazon Brasil",
			Title:     Candidate{"#productTitle", "#title"},
			Price: Candidate{
				"#corePrice_feature_div .a-price .a-offscreen",
				"#corePriceDisplay_desktop_feature_div .priceToPay .a-offscreen",
				"#priceblock_dealprice",
				"#priceblock_ourprice",
				".a-price-whole",
			},
			OldPrice: Candidate{
				"#corePriceDisplay_desktop_feature_div .basisPrice .a-offscreen",
				".a-price.a-text-price .a-offscreen",
				"#priceblock_listprice",
			},
			Image:       Candidate{"#landingImage", "#imgBlkFront", "#main-image"},
			Currency:    Candidate{".a-price-symbol"},
			Description: Candidate{"#productDescription span", "#feature-bullets ul"},
		},
		{
			// Amazon
			Host:      "amazon.com",
			StoreName: "Amazon",
			Title:     Candidate{"#productTitle", "#title"},
			Price: Candidate{
				"#corePrice_feature_div .a-price .a-offscreen",
				"#corePriceDisplay_desktop_feature_div .priceToPay .a-offscreen",
				"#priceblock_dealprice",
				"#priceblock_ourprice",
				".a-price-whole",
			},
			OldPrice: Candidate{
				"#corePriceDisplay_desktop_feature_div .basisPrice .a-offscreen",
				".a-price.a-text-price .a-offscreen",
				"#priceblock_listprice",
			},
			Image:       Candidate{"#landingImage", "#imgBlkFront", "#main-image"},
			Currency:    Candidate{".a-price-symbol"},
			Description: Candidate{"#productDescription span", "#feature-bullets ul"},
		},
		{
			// Mercado Livre
			Host:      "mercadolivre.com.br",
			StoreName: "Mercado Livre",
			Title:     Candidate{".ui-pdp-title", "h1.ui-pdp-title"},
			// Whole amount elements first so the cents span is kept
			Price: Candidate{
				".ui-pdp-price__second-line .andes-money-amount",
				".ui-pdp-price__second-line .andes-money-amount__fraction",
				".andes-money-amount__fraction",
			},
			OldPrice: Candidate{
				"s.andes-money-amount--previous",
				".ui-pdp-price__original-value",
			},
			Image:       Candidate{".ui-pdp-gallery__figure img", "img.ui-pdp-image"},
			Currency:    Candidate{".andes-money-amount__currency-symbol"},
			Description: Candidate{".ui-pdp-description__content"},
		},
		{
			// Mercado Libre, the Spanish-language storefronts
			Host:        "mercadolibre.com",
			StoreName:   "Mercado Libre",
			Title:       Candidate{".ui-pdp-title"},
			Price: Candidate{
				".ui-pdp-price__second-line .andes-money-amount",
				".ui-pdp-price__second-line .andes-money-amount__fraction",
				".andes-money-amount__fraction",
			},
			OldPrice:    Candidate{"s.andes-money-amount--previous", ".ui-pdp-price__original-value"},
			Image:       Candidate{".ui-pdp-gallery__figure img", "img.ui-pdp-image"},
			Currency:    Candidate{".andes-money-amount__currency-symbol"},
			Description: Candidate{".ui-pdp-description__content"},
		},
		{
			// AliExpress
			Host:        "aliexpress.com",
			StoreName:   "AliExpress",
			Title:       Candidate{".product-title-text", "h1[data-pl='product-title']"},
			Price:       Candidate{".product-price-value", ".product-price-current"},
			OldPrice:    Candidate{".product-price-original", ".product-price-del"},
			Image:       Candidate{".magnifier-image", ".image-view-magnifier-wrap img"},
			Currency:    Candidate{".product-price-currency"},
			Description: Candidate{".product-description-content", "#product-description"},
		},
		{
			// Shopee
			Host:        "shopee.com.br",
			StoreName:   "Shopee",
			Title:       Candidate{"._44qnta span", ".product-briefing h1"},
			Price:       Candidate{".pqTWkA", ".product-briefing .G27FPf"},
			OldPrice:    Candidate{".Y3DvsN", ".product-briefing .qg2n76"},
			Image:       Candidate{".product-briefing picture img", ".product-briefing img"},
			Description: Candidate{".product-detail .irIKAp", ".product-detail"},
		},
		{
			// Magazine Luiza
			Host:        "magazineluiza.com.br",
			StoreName:   "Magazine Luiza",
			Title:       Candidate{"h1[data-testid='heading-product-title']", "h1"},
			Price:       Candidate{"p[data-testid='price-value']", "[data-testid='price-value']"},
			OldPrice:    Candidate{"p[data-testid='price-original']"},
			Image:       Candidate{"img[data-testid='image-selected-thumbnail']", "[data-testid='media-gallery-image']"},
			Description: Candidate{"div[data-testid='rich-content-container']"},
		},
		{
			// KaBuM!
			Host:        "kabum.com.br",
			StoreName:   "KaBuM!",
			Title:       Candidate{"h1.sc-58b2114e-6", "#container-purchase h1", "h1"},
			Price:       Candidate{"h4.finalPrice", ".finalPrice"},
			OldPrice:    Candidate{"span.oldPrice", ".oldPrice"},
			Image:       Candidate{"#carouselDetails img", ".swiper-slide img"},
			Description: Candidate{"#description", "#iframeContainer"},
		},
	}
}
