package report

import (
	"github.com/lepinkainen/paupercube/internal/carddata"
	"github.com/lepinkainen/paupercube/internal/cubelist"
)

func price(s string) *string { return &s }

func printing(name, setName, released, number, mana, typeLine, rarity string, usd *string) carddata.Printing {
	return carddata.Printing{
		Name:            name,
		SetName:         setName,
		ReleasedAt:      released,
		CollectorNumber: number,
		ManaCost:        mana,
		TypeLine:        typeLine,
		Rarity:          rarity,
		Prices:          carddata.Prices{USD: usd},
		Lang:            "en",
	}
}

func defaultOptions() Options {
	return Options{
		IgnoreSets: []string{
			"Summer Magic / Edgar",
			"Mystery Booster",
			"The List",
			"Limited Edition Alpha",
			"Limited Edition Beta",
			"Unlimited Edition",
		},
		IgnoreSetTypes: []string{"masterpiece", "alchemy", "memorabilia"},
		Languages:      []string{"en"},
		SkipDigital:    true,
	}
}

// fixtureNames matches fixtureCache: Counterspell in three lists, Lightning
// Bolt in two, the rest in one.
func fixtureNames() *cubelist.NameTable {
	return cubelist.FromLists(
		[]string{"Lightning Bolt", "Counterspell", "Kabira Takedown"},
		[]string{"Counterspell", "Lightning Bolt", "Ach! Hans, Run!"},
		[]string{"Counterspell"},
	)
}

func fixtureCache() *carddata.Cache {
	cache := carddata.NewCache()

	cache.Put("Lightning Bolt", &carddata.CardRecord{
		Count: 2,
		Printings: []carddata.Printing{
			printing("Lightning Bolt", "Limited Edition Beta", "1993-10-04", "162", "{R}", "Instant", "common", price("400.00")),
			printing("Lightning Bolt", "Fourth Edition", "1995-04-01", "208", "{R}", "Instant", "common", price("1.25")),
			printing("Lightning Bolt", "Magic 2011", "2010-07-16", "149", "{R}", "Instant", "common", nil),
		},
	})

	digital := printing("Counterspell", "Vintage Masters", "2014-06-16", "42", "{U}{U}", "Instant", "common", nil)
	digital.Digital = true
	cache.Put("Counterspell", &carddata.CardRecord{
		Count: 3,
		Printings: []carddata.Printing{
			printing("Counterspell", "Fourth Edition", "1995-04-01", "65", "{U}{U}", "Instant", "uncommon", price("0.75")),
			printing("Counterspell", "Mystery Booster", "2019-11-07", "400", "{U}{U}", "Instant", "common", price("0.50")),
			printing("Counterspell", "Tempest", "1997-10-14", "57", "{U}{U}", "Instant", "common", nil),
			digital,
		},
	})

	kabira := printing("Kabira Takedown // Kabira Plateau", "Zendikar Rising", "2020-09-25", "27", "", "", "uncommon", price("0.10"))
	kabira.CardFaces = []carddata.CardFace{
		{Name: "Kabira Takedown", ManaCost: "{1}{W}", TypeLine: "Instant"},
		{Name: "Kabira Plateau", ManaCost: "", TypeLine: "Land"},
	}
	cache.Put("Kabira Takedown", &carddata.CardRecord{Count: 1, Printings: []carddata.Printing{kabira}})

	cache.Put("Ach! Hans, Run!", &carddata.CardRecord{
		Count: 1,
		Printings: []carddata.Printing{
			printing("Ach! Hans, Run!", "Unhinged", "2004-11-19", "116", "{2}{R}{R}{G}{G}", "Enchantment", "rare", price("0.99")),
		},
	})

	return cache
}
