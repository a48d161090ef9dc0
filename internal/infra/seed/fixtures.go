package seed

import (
	"time"

	"dalahus/internal/domain/entity"
)

// Bootstrap rows for a freshly created store. The site ships with the firm's
// real offices and staff so a new deployment renders a complete page on first
// start instead of an empty shell.

func brokerSeeds() []*entity.Broker {
	return []*entity.Broker{
		{
			Name:  "Anna Ståhl",
			Email: "anna.stahl@dalahus.se",
			Phone: "070-123 45 67",
			Title: "Fastighetsmäklare",
			Bio:   "Ansvarig mäklare för Falun och norra Dalarna. Registrerad hos FMI sedan 2011.",
		},
		{
			Name:  "Bosse Andersson",
			Email: "bosse.andersson@dalahus.se",
			Phone: "070-234 56 78",
			Title: "Fastighetsmäklare",
			Bio:   "Sköter visningar och försäljningar i Borlänge med omnejd.",
		},
	}
}

func housingSeeds() []*entity.Housing {
	return []*entity.Housing{
		{
			Address:     "Storgatan 15A",
			City:        "Borlänge",
			Price:       "1 950 000 kr",
			Rooms:       3,
			Area:        78,
			Description: "Ljus trea med balkong i söderläge, två kvarter från resecentrum.",
		},
		{
			Address:     "Kvarngatan 2",
			City:        "Falun",
			Price:       "2 450 000 kr",
			Rooms:       4,
			Area:        96,
			Description: "Rymlig fyra med öppen spis och nyrenoverat kök.",
		},
		{
			Address:     "Siljansvägen 8",
			City:        "Leksand",
			Price:       "3 200 000 kr",
			Rooms:       5,
			Area:        124,
			Description: "Villa med sjöutsikt över Siljan och stor altan i västerläge.",
		},
		{
			Address:     "Åsgatan 31",
			City:        "Ludvika",
			Price:       "1 150 000 kr",
			Rooms:       2,
			Area:        54,
			Description: "Kompakt tvåa nära centrum, perfekt förstabostad.",
		},
	}
}

func officeSeeds() []*entity.Office {
	return []*entity.Office{
		{
			Name:     "Dalahus Falun",
			Address:  "Åsgatan 12, 791 71 Falun",
			Lat:      60.6065,
			Lon:      15.6355,
			Manager:  "Anna Ståhl",
			ImageURL: "/static/img/kontor-falun.jpg",
		},
		{
			Name:     "Dalahus Borlänge",
			Address:  "Sveagatan 21, 784 33 Borlänge",
			Lat:      60.4858,
			Lon:      15.4371,
			Manager:  "Bosse Andersson",
			ImageURL: "/static/img/kontor-borlange.jpg",
		},
		{
			Name:     "Dalahus Ludvika",
			Address:  "Storgatan 5, 771 30 Ludvika",
			Lat:      60.1496,
			Lon:      15.1880,
			Manager:  "Bosse Andersson",
			ImageURL: "/static/img/kontor-ludvika.jpg",
		},
	}
}

func accountSeeds() []*entity.Account {
	return []*entity.Account{
		{Username: "pei", Password: "1234", Role: entity.RoleAdmin},
		{Username: "pdo", Password: "123", Role: entity.RoleUser},
	}
}

// articleSeed carries the author as an email so the loader can resolve it to
// a broker id after the broker phase has run.
type articleSeed struct {
	Title       string
	Body        string
	AuthorEmail string
	Age         time.Duration
}

func articleSeeds() []articleSeed {
	return []articleSeed{
		{
			Title:       "Bostadsmarknaden i Dalarna våren 2024",
			Body:        "Priserna i Falun och Borlänge har stabiliserats efter vinterns nedgång. Vi ser åter fler besökare på visningarna, framför allt på objekt under två miljoner kronor.",
			AuthorEmail: "anna.stahl@dalahus.se",
			Age:         5 * 24 * time.Hour,
		},
		{
			Title:       "Så förbereder du din bostad inför visning",
			Body:        "En städad och avskalad bostad säljer bättre. Våra mäklare delar sina bästa tips: rensa hallen, tänd lamporna och baka gärna något strax innan spekulanterna kommer.",
			AuthorEmail: "bosse.andersson@dalahus.se",
			Age:         2 * 24 * time.Hour,
		},
		{
			Title:       "Nytt kontor i Ludvika",
			Body:        "Vi öppnar ett tredje kontor på Storgatan 5 i Ludvika och hälsar kunder i södra Dalarna välkomna in på invigningen nästa lördag.",
			AuthorEmail: "",
			Age:         0,
		},
	}
}

// commentSeed references its article by title; the loader resolves the title
// to the id assigned at insert time.
type commentSeed struct {
	ArticleTitle string
	AuthorName   string
	Body         string
	Age          time.Duration
}

func commentSeeds() []commentSeed {
	return []commentSeed{
		{
			ArticleTitle: "Bostadsmarknaden i Dalarna våren 2024",
			AuthorName:   "Kalle Anka",
			Body:         "Tack för en bra sammanfattning! Stämmer det även för Leksand?",
			Age:          36 * time.Hour,
		},
		{
			ArticleTitle: "Så förbereder du din bostad inför visning",
			AuthorName:   "Stina Persson",
			Body:         "Bakningstipset fungerade, lägenheten såld över utgångspris!",
			Age:          20 * time.Hour,
		},
		{
			ArticleTitle: "Så förbereder du din bostad inför visning",
			AuthorName:   "Hemmastylisten",
			Body:         "Glöm inte heller att vädra ordentligt innan visningen börjar.",
			Age:          6 * time.Hour,
		},
	}
}
