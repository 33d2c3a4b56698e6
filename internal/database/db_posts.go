package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-inkwell/inkwell/internal/models"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrPostNotFound is returned when no post with the requested id exists.
	ErrPostNotFound = errors.New("post not found")

	// ErrDuplicateTitle is returned when a write collides with the UNIQUE
	// constraint on blog_posts.title.
	ErrDuplicateTitle = errors.New("post title already exists")
)

// isConstraintViolation reports whether err is a sqlite constraint failure
func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}

// GetAllPosts retrieves all blog posts in insertion order
func (db *Database) GetAllPosts() ([]*models.BlogPost, error) {
	query := `
		SELECT id, title, subtitle, date, body, author, img_url
		FROM blog_posts
		ORDER BY id ASC
	`

	rows, err := retryableQuery(db.mainDB, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		post := &models.BlogPost{}
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Subtitle,
			&post.Date,
			&post.Body,
			&post.Author,
			&post.ImgURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// GetPostByID retrieves a blog post by its ID
func (db *Database) GetPostByID(id int) (*models.BlogPost, error) {
	query := `
		SELECT id, title, subtitle, date, body, author, img_url
		FROM blog_posts
		WHERE id = ?
	`

	post := &models.BlogPost{}
	err := retryableQueryRowScan(db.mainDB, query, []interface{}{id},
		&post.ID,
		&post.Title,
		&post.Subtitle,
		&post.Date,
		&post.Body,
		&post.Author,
		&post.ImgURL,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// CreatePost persists a new blog post and assigns its ID. The Date field must
// already carry the display-formatted creation date; it is stored verbatim.
func (db *Database) CreatePost(post *models.BlogPost) error {
	query := `
		INSERT INTO blog_posts (title, subtitle, date, body, author, img_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := retryableExec(db.mainDB, query,
		post.Title,
		post.Subtitle,
		post.Date,
		post.Body,
		post.Author,
		post.ImgURL,
	)

	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %q", ErrDuplicateTitle, post.Title)
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get post ID: %w", err)
	}

	post.ID = int(id)
	return nil
}

// UpdatePost overwrites all mutable fields of the post with the given ID.
// ID and date are never touched: an edited post keeps its creation date.
func (db *Database) UpdatePost(post *models.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = ?, subtitle = ?, body = ?, author = ?, img_url = ?
		WHERE id = ?
	`

	result, err := retryableExec(db.mainDB, query,
		post.Title,
		post.Subtitle,
		post.Body,
		post.Author,
		post.ImgURL,
		post.ID,
	)

	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %q", ErrDuplicateTitle, post.Title)
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// DeletePost removes the post with the given ID permanently
func (db *Database) DeletePost(id int) error {
	query := `DELETE FROM blog_posts WHERE id = ?`

	result, err := retryableExec(db.mainDB, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}
