package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/model"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const priceCacheTTL = 5 * time.Minute

// ProductService defines the business logic contract for products.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.PageFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
	// GetPrice serves the price-check lookup through a short-lived Redis cache.
	GetPrice(ctx context.Context, id uint) (*dto.PriceResponse, error)
}

type productService struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewProductService(repo repository.ProductRepository, rdb *redis.Client) ProductService {
	return &productService{repo: repo, rdb: rdb}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if _, err := s.repo.FindByDesignation(ctx, req.Designation); err == nil {
		return nil, apierror.BadRequest("Un produit avec cette désignation existe déjà")
	}

	product := &model.Product{
		Designation:   req.Designation,
		Genre:         req.Genre,
		PriceUnite:    req.PriceUnite,
		CapacityByBox: req.CapacityByBox,
		BoxID:         req.BoxID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, apierror.Internal("Erreur lors de la création du produit")
	}
	return productToResponse(product), nil
}

func (s *productService) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Produit introuvable")
	}
	return productToResponse(product), nil
}

func (s *productService) List(ctx context.Context, filter dto.PageFilter) (*dto.ProductListResponse, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("Erreur lors de la lecture des produits")
	}

	resp := &dto.ProductListResponse{
		Products: make([]dto.ProductResponse, 0, len(products)),
		Pagination: dto.Pagination{
			TotalItems:  total,
			TotalPages:  totalPages(total, filter.Limit),
			CurrentPage: filter.Page,
			PageSize:    filter.Limit,
		},
	}
	for i := range products {
		resp.Products = append(resp.Products, *productToResponse(&products[i]))
	}
	return resp, nil
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Produit introuvable")
	}

	product.Designation = req.Designation
	product.Genre = req.Genre
	if req.PriceUnite != nil {
		product.PriceUnite = *req.PriceUnite
	}
	if req.CapacityByBox != nil {
		product.CapacityByBox = *req.CapacityByBox
	}
	if req.BoxID != nil {
		product.BoxID = req.BoxID
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, apierror.Internal("Erreur lors de la mise à jour du produit")
	}
	s.invalidatePrice(ctx, id)
	return productToResponse(product), nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Produit introuvable")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal("Erreur lors de la suppression du produit")
	}
	s.invalidatePrice(ctx, id)
	return nil
}

func priceCacheKey(id uint) string { return fmt.Sprintf("price:product:%d", id) }

func (s *productService) GetPrice(ctx context.Context, id uint) (*dto.PriceResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, priceCacheKey(id)).Result(); err == nil {
			var resp dto.PriceResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Produit introuvable")
	}
	resp := &dto.PriceResponse{
		ProductID:     product.ID,
		Designation:   product.Designation,
		PriceUnite:    product.PriceUnite,
		CapacityByBox: product.CapacityByBox,
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, priceCacheKey(id), data, priceCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Uint("product_id", id).Msg("price cache write failed")
			}
		}
	}
	return resp, nil
}

func (s *productService) invalidatePrice(ctx context.Context, id uint) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, priceCacheKey(id)).Err(); err != nil {
		log.Warn().Err(err).Uint("product_id", id).Msg("price cache invalidation failed")
	}
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Designation:   p.Designation,
		Genre:         p.Genre,
		PriceUnite:    p.PriceUnite,
		CapacityByBox: p.CapacityByBox,
		Stock:         p.Stock,
		UniteInStock:  p.UniteInStock,
		BoxID:         p.BoxID,
	}
}
