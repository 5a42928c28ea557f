package db

import (
	"fmt"
	"log"

	"bandserver/models"
)

// Gallery, merch, upload and fan-wall repositories.

// --- Media ---

// CreateMedia assigns a fresh id and creation timestamp, appends the item
// and returns it.
func (db *Database) CreateMedia(item models.MediaItem) models.MediaItem {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	item.ID = nextEntityID(maxMediaID(db.Store.Media))
	item.CreatedAt = nowStamp()
	db.Store.Media = append(db.Store.Media, item)
	log.Printf("INFO: Created Media ID: %d, Type: %s, Title: %q", item.ID, item.Type, item.Title)

	db.requestSave()
	return item
}

// GetMediaByID retrieves a media item by id.
func (db *Database) GetMediaByID(id int64) (models.MediaItem, bool) {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	for _, item := range db.Store.Media {
		if item.ID == id {
			return item, true
		}
	}
	return models.MediaItem{}, false
}

// GetAllMedia returns a copy of the media collection.
func (db *Database) GetAllMedia() []models.MediaItem {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	items := make([]models.MediaItem, len(db.Store.Media))
	copy(items, db.Store.Media)
	return items
}

// UpdateMedia shallow-merges the patch over the stored item.
func (db *Database) UpdateMedia(id int64, patch models.MediaPatch) (models.MediaItem, error) {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	for i, item := range db.Store.Media {
		if item.ID != id {
			continue
		}
		if patch.Type != nil {
			item.Type = *patch.Type
		}
		if patch.Title != nil {
			item.Title = *patch.Title
		}
		if patch.URL != nil {
			item.URL = *patch.URL
		}
		if patch.Description != nil {
			item.Description = *patch.Description
		}
		if patch.Category != nil {
			item.Category = *patch.Category
		}
		if patch.IsActive != nil {
			item.IsActive = *patch.IsActive
		}

		items := make([]models.MediaItem, len(db.Store.Media))
		copy(items, db.Store.Media)
		items[i] = item
		db.Store.Media = items
		log.Printf("INFO: Updated Media ID: %d", id)

		db.requestSave()
		return item, nil
	}
	return models.MediaItem{}, fmt.Errorf("media with ID %d: %w", id, ErrNotFound)
}

// DeleteMedia removes a media item by id.
func (db *Database) DeleteMedia(id int64) error {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	items := make([]models.MediaItem, 0, len(db.Store.Media))
	found := false
	for _, item := range db.Store.Media {
		if item.ID == id {
			found = true
			continue
		}
		items = append(items, item)
	}
	if !found {
		return fmt.Errorf("media with ID %d: %w", id, ErrNotFound)
	}
	db.Store.Media = items
	log.Printf("INFO: Deleted Media ID: %d", id)

	db.requestSave()
	return nil
}

func maxMediaID(items []models.MediaItem) int64 {
	var max int64
	for _, m := range items {
		if m.ID > max {
			max = m.ID
		}
	}
	return max
}

// --- Products ---

// CreateProduct assigns a fresh id and creation timestamp, appends the
// product and returns it.
func (db *Database) CreateProduct(product models.Product) models.Product {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	product.ID = nextEntityID(maxProductID(db.Store.Products))
	product.CreatedAt = nowStamp()
	db.Store.Products = append(db.Store.Products, product)
	log.Printf("INFO: Created Product ID: %d, Name: %q", product.ID, product.Name)

	db.requestSave()
	return product
}

// GetProductByID retrieves a product by id.
func (db *Database) GetProductByID(id int64) (models.Product, bool) {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	for _, product := range db.Store.Products {
		if product.ID == id {
			return product, true
		}
	}
	return models.Product{}, false
}

// GetAllProducts returns a copy of the products collection.
func (db *Database) GetAllProducts() []models.Product {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	products := make([]models.Product, len(db.Store.Products))
	copy(products, db.Store.Products)
	return products
}

// UpdateProduct shallow-merges the patch over the stored product.
func (db *Database) UpdateProduct(id int64, patch models.ProductPatch) (models.Product, error) {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	for i, product := range db.Store.Products {
		if product.ID != id {
			continue
		}
		if patch.Name != nil {
			product.Name = *patch.Name
		}
		if patch.Price != nil {
			product.Price = *patch.Price
		}
		if patch.Image != nil {
			product.Image = *patch.Image
		}
		if patch.Description != nil {
			product.Description = *patch.Description
		}
		if patch.Category != nil {
			product.Category = *patch.Category
		}
		if patch.Stock != nil {
			product.Stock = *patch.Stock
		}
		if patch.IsLimited != nil {
			product.IsLimited = *patch.IsLimited
		}
		if patch.IsActive != nil {
			product.IsActive = *patch.IsActive
		}

		products := make([]models.Product, len(db.Store.Products))
		copy(products, db.Store.Products)
		products[i] = product
		db.Store.Products = products
		log.Printf("INFO: Updated Product ID: %d", id)

		db.requestSave()
		return product, nil
	}
	return models.Product{}, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
}

// DeleteProduct removes a product by id.
func (db *Database) DeleteProduct(id int64) error {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	products := make([]models.Product, 0, len(db.Store.Products))
	found := false
	for _, product := range db.Store.Products {
		if product.ID == id {
			found = true
			continue
		}
		products = append(products, product)
	}
	if !found {
		return fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	db.Store.Products = products
	log.Printf("INFO: Deleted Product ID: %d", id)

	db.requestSave()
	return nil
}

func maxProductID(products []models.Product) int64 {
	var max int64
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}

// --- Uploads ---

// PutUpload upserts an upload record. When the id already exists the entry
// is replaced in place; the client re-puts the same id to move status from
// uploading to completed. A zero id gets a fresh one assigned.
func (db *Database) PutUpload(upload models.Upload) models.Upload {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	if upload.ID == 0 {
		upload.ID = nextEntityID(maxUploadID(db.Store.Uploads))
	}
	if upload.UploadDate == "" {
		upload.UploadDate = nowStamp()
	}
	if upload.Status == "" {
		upload.Status = models.UploadUploading
	}

	uploads := make([]models.Upload, len(db.Store.Uploads))
	copy(uploads, db.Store.Uploads)
	replaced := false
	for i, existing := range uploads {
		if existing.ID == upload.ID {
			uploads[i] = upload
			replaced = true
			break
		}
	}
	if !replaced {
		uploads = append(uploads, upload)
	}
	db.Store.Uploads = uploads
	log.Printf("INFO: Put Upload ID: %d, Name: %q, Status: %s (replaced: %t)", upload.ID, upload.Name, upload.Status, replaced)

	db.requestSave()
	return upload
}

// GetAllUploads returns a copy of the uploads collection.
func (db *Database) GetAllUploads() []models.Upload {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	uploads := make([]models.Upload, len(db.Store.Uploads))
	copy(uploads, db.Store.Uploads)
	return uploads
}

// DeleteUpload removes an upload record by id.
func (db *Database) DeleteUpload(id int64) error {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	uploads := make([]models.Upload, 0, len(db.Store.Uploads))
	found := false
	for _, upload := range db.Store.Uploads {
		if upload.ID == id {
			found = true
			continue
		}
		uploads = append(uploads, upload)
	}
	if !found {
		return fmt.Errorf("upload with ID %d: %w", id, ErrNotFound)
	}
	db.Store.Uploads = uploads
	log.Printf("INFO: Deleted Upload ID: %d", id)

	db.requestSave()
	return nil
}

func maxUploadID(uploads []models.Upload) int64 {
	var max int64
	for _, u := range uploads {
		if u.ID > max {
			max = u.ID
		}
	}
	return max
}

// --- Comments ---

// CreateComment assigns a fresh id and timestamp and appends the comment.
// Status defaults to pending when empty.
func (db *Database) CreateComment(comment models.Comment) models.Comment {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	comment.ID = nextEntityID(maxCommentID(db.Store.Comments))
	comment.Timestamp = nowStamp()
	if comment.Status == "" {
		comment.Status = models.CommentPending
	}
	db.Store.Comments = append(db.Store.Comments, comment)
	log.Printf("INFO: Created Comment ID: %d, User: %q, Status: %s", comment.ID, comment.Username, comment.Status)

	db.requestSave()
	return comment
}

// GetAllComments returns a copy of the comments collection.
func (db *Database) GetAllComments() []models.Comment {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	comments := make([]models.Comment, len(db.Store.Comments))
	copy(comments, db.Store.Comments)
	return comments
}

// GetCommentByID retrieves a comment by id.
func (db *Database) GetCommentByID(id int64) (models.Comment, bool) {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	for _, comment := range db.Store.Comments {
		if comment.ID == id {
			return comment, true
		}
	}
	return models.Comment{}, false
}

// ApproveComment sets the comment status to approved. Any prior status is
// allowed, including rejected.
func (db *Database) ApproveComment(id int64) (models.Comment, error) {
	return db.setCommentStatus(id, models.CommentApproved)
}

// RejectComment sets the comment status to rejected.
func (db *Database) RejectComment(id int64) (models.Comment, error) {
	return db.setCommentStatus(id, models.CommentRejected)
}

func (db *Database) setCommentStatus(id int64, status string) (models.Comment, error) {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	for i, comment := range db.Store.Comments {
		if comment.ID != id {
			continue
		}
		comment.Status = status

		comments := make([]models.Comment, len(db.Store.Comments))
		copy(comments, db.Store.Comments)
		comments[i] = comment
		db.Store.Comments = comments
		log.Printf("INFO: Comment ID %d status -> %s", id, status)

		db.requestSave()
		return comment, nil
	}
	return models.Comment{}, fmt.Errorf("comment with ID %d: %w", id, ErrNotFound)
}

// ToggleCommentLike flips the liked flag and adjusts the like counter.
func (db *Database) ToggleCommentLike(id int64) (models.Comment, error) {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	for i, comment := range db.Store.Comments {
		if comment.ID != id {
			continue
		}
		if comment.Liked {
			comment.Liked = false
			if comment.Likes > 0 {
				comment.Likes--
			}
		} else {
			comment.Liked = true
			comment.Likes++
		}

		comments := make([]models.Comment, len(db.Store.Comments))
		copy(comments, db.Store.Comments)
		comments[i] = comment
		db.Store.Comments = comments

		db.requestSave()
		return comment, nil
	}
	return models.Comment{}, fmt.Errorf("comment with ID %d: %w", id, ErrNotFound)
}

// DeleteComment removes a comment permanently.
func (db *Database) DeleteComment(id int64) error {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	comments := make([]models.Comment, 0, len(db.Store.Comments))
	found := false
	for _, comment := range db.Store.Comments {
		if comment.ID == id {
			found = true
			continue
		}
		comments = append(comments, comment)
	}
	if !found {
		return fmt.Errorf("comment with ID %d: %w", id, ErrNotFound)
	}
	db.Store.Comments = comments
	log.Printf("INFO: Deleted Comment ID: %d", id)

	db.requestSave()
	return nil
}

func maxCommentID(comments []models.Comment) int64 {
	var max int64
	for _, c := range comments {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}
