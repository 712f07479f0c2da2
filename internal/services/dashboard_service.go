package services

import (
	"fmt"

	"github.com/humidorlog/humidor/internal/models"
	"github.com/humidorlog/humidor/internal/repository"
)

type DashboardService struct {
	cigarRepo   *repository.CigarRepository
	tastingRepo *repository.TastingRepository
}

func NewDashboardService(cigarRepo *repository.CigarRepository, tastingRepo *repository.TastingRepository) *DashboardService {
	return &DashboardService{
		cigarRepo:   cigarRepo,
		tastingRepo: tastingRepo,
	}
}

type FavoriteCigar struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type FlavorCounts struct {
	Tobacco   int `json:"tobacco"`
	Pepper    int `json:"pepper"`
	Earthy    int `json:"earthy"`
	Floral    int `json:"floral"`
	Coffee    int `json:"coffee"`
	Fruit     int `json:"fruit"`
	Chocolate int `json:"chocolate"`
	Nutty     int `json:"nutty"`
	Woody     int `json:"woody"`
}

type DashboardStats struct {
	TotalCigars   int64         `json:"total_cigars"`
	TotalTastings int64         `json:"total_tastings"`
	AverageScore  string        `json:"average_score"`
	FavoriteCigar FavoriteCigar `json:"favorite_cigar"`
	Flavors       FlavorCounts  `json:"flavors"`
}

// Stats aggregates the dashboard figures over cigars in stock and
// finalized tastings.
func (s *DashboardService) Stats() (*DashboardStats, error) {
	totalCigars, err := s.cigarRepo.TotalQuantity()
	if err != nil {
		return nil, err
	}

	totalTastings, err := s.tastingRepo.CountByStatus(models.TastingFinalized)
	if err != nil {
		return nil, err
	}

	avg, err := s.tastingRepo.AverageFinalizedScore()
	if err != nil {
		return nil, err
	}

	finalized, err := s.tastingRepo.FindByStatus(models.TastingFinalized, "")
	if err != nil {
		return nil, err
	}

	favorite := FavoriteCigar{Name: "none"}
	counts := map[string]int{}
	for _, tasting := range finalized {
		counts[tasting.Cigar.Name]++
		if counts[tasting.Cigar.Name] > favorite.Count {
			favorite = FavoriteCigar{Name: tasting.Cigar.Name, Count: counts[tasting.Cigar.Name]}
		}
	}

	var flavors FlavorCounts
	for _, tasting := range finalized {
		if tasting.FlavorTobacco {
			flavors.Tobacco++
		}
		if tasting.FlavorPepper {
			flavors.Pepper++
		}
		if tasting.FlavorEarthy {
			flavors.Earthy++
		}
		if tasting.FlavorFloral {
			flavors.Floral++
		}
		if tasting.FlavorCoffee {
			flavors.Coffee++
		}
		if tasting.FlavorFruit {
			flavors.Fruit++
		}
		if tasting.FlavorChocolate {
			flavors.Chocolate++
		}
		if tasting.FlavorNutty {
			flavors.Nutty++
		}
		if tasting.FlavorWoody {
			flavors.Woody++
		}
	}

	return &DashboardStats{
		TotalCigars:   totalCigars,
		TotalTastings: totalTastings,
		AverageScore:  fmt.Sprintf("%.1f", avg),
		FavoriteCigar: favorite,
		Flavors:       flavors,
	}, nil
}
