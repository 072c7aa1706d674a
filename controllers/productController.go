package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/seoulglow/seoulglow-api/initializers"
	"github.com/seoulglow/seoulglow-api/models"
	"github.com/seoulglow/seoulglow-api/utils"
	"gorm.io/gorm"
)

const productCacheTTL = 10 * time.Minute

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"error":  message,
		"detail": errMsg,
	})
}

func productCacheKey(id int) string {
	return fmt.Sprintf("product:%d", id)
}

func invalidateProductCache(id int) {
	if initializers.Cache == nil {
		return
	}
	cacheCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := initializers.Cache.Del(cacheCtx, productCacheKey(id), "products:bestsellers").Err(); err != nil {
		log.Printf("Cache invalidation failed for product %d: %v", id, err)
	}
}

// applyCatalogFilters translates the catalog query params (search,
// category/brand slugs, flag filters) into WHERE clauses.
func applyCatalogFilters(ctx *gin.Context, query *gorm.DB) *gorm.DB {
	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ? OR brand LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", utils.NormalizeCategorySlug(category))
	}
	if brand := ctx.Query("brand"); brand != "" {
		query = query.Where("LOWER(brand) = ?", utils.NormalizeBrandSlug(brand))
	}
	if ctx.Query("bestseller") == "true" {
		query = query.Where("bestseller = ?", true)
	}
	if ctx.Query("vegan") == "true" {
		query = query.Where("vegan = ?", true)
	}
	if ctx.Query("crueltyFree") == "true" {
		query = query.Where("cruelty_free = ?", true)
	}
	return query
}

func GetProducts(ctx *gin.Context) {
	var products []models.Product

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}
	offset := (page - 1) * limit

	query := applyCatalogFilters(ctx, initializers.DB.Model(&models.Product{}))

	result := query.Limit(limit).Offset(offset).Order("created_at desc").Find(&products)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	var count int64
	applyCatalogFilters(ctx, initializers.DB.Model(&models.Product{})).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	if initializers.Cache != nil {
		cacheCtx, cancel := context.WithTimeout(ctx.Request.Context(), time.Second)
		defer cancel()
		if cached, err := initializers.Cache.Get(cacheCtx, productCacheKey(productId)).Bytes(); err == nil {
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}

	var product models.Product
	result := initializers.DB.First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	if initializers.Cache != nil {
		if body, err := json.Marshal(product); err == nil {
			cacheCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			initializers.Cache.Set(cacheCtx, productCacheKey(productId), body, productCacheTTL)
		}
	}

	ctx.JSON(http.StatusOK, product)
}

func CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product.Category = utils.NormalizeCategorySlug(product.Category)

	if err := initializers.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	// A new bestseller must show up on the next listing, not after the TTL.
	invalidateProductCache(int(product.ID))
	ctx.JSON(http.StatusCreated, product)
}

func UpdateProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}

	var update models.Product
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	update.ID = product.ID
	update.CreatedAt = product.CreatedAt
	update.Category = utils.NormalizeCategorySlug(update.Category)

	if err := initializers.DB.Save(&update).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		return
	}

	invalidateProductCache(productId)
	ctx.JSON(http.StatusOK, update)
}

func DeleteProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	result := initializers.DB.Delete(&models.Product{}, productId)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}

	invalidateProductCache(productId)
	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func UploadProductImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	productIdStr := ctx.PostForm("productId")
	if productIdStr == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing productId", nil)
		return
	}

	productId, err := strconv.Atoi(productIdStr)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid productId", err)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		}
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "seoulglow"
	}

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique key to prevent overwrites
		uniqueFilename := fmt.Sprintf("%d-%s-%s", productId, time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)
	}

	if len(uploadedUrls) > 0 {
		images := append(utils.DecodeImageList(product.Images), uploadedUrls...)
		encoded, _ := json.Marshal(images)
		if err := initializers.DB.Model(&product).Update("images", encoded).Error; err != nil {
			log.Printf("Error saving image URLs for product %d: %v", productId, err)
		}
		invalidateProductCache(productId)
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}

	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}

func GetBestsellers(ctx *gin.Context) {
	const cacheKey = "products:bestsellers"

	if initializers.Cache != nil {
		cacheCtx, cancel := context.WithTimeout(ctx.Request.Context(), time.Second)
		defer cancel()
		if cached, err := initializers.Cache.Get(cacheCtx, cacheKey).Bytes(); err == nil {
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}

	var products []models.Product
	result := initializers.DB.Where("bestseller = ?", true).Order("created_at desc").Limit(12).Find(&products)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch bestsellers", result.Error)
		return
	}

	body, err := json.Marshal(gin.H{"products": products})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to encode bestsellers", err)
		return
	}

	if initializers.Cache != nil {
		cacheCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		initializers.Cache.Set(cacheCtx, cacheKey, body, productCacheTTL)
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
