package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yomu/bookshelf/internal/entities"
	"github.com/yomu/bookshelf/internal/themes"
)

// BooksStore defines the database operations the books controller needs.
type BooksStore interface {
	GetAllBooks() ([]entities.Book, error)
	GetBookByID(id uint) (*entities.Book, error)
	CreateBook(book *entities.Book) error
	UpdateBook(book *entities.Book) error
	DeleteBook(id uint) error
}

// CategoriesStore provides the category list for the form's dropdown.
type CategoriesStore interface {
	GetAllCategories() ([]entities.Category, error)
}

type BooksController struct {
	books      BooksStore
	categories CategoriesStore
	resolver   *themes.Resolver
}

func NewBooksController(books BooksStore, categories CategoriesStore, resolver *themes.Resolver) *BooksController {
	return &BooksController{
		books:      books,
		categories: categories,
		resolver:   resolver,
	}
}

// ListPage renders all books under the visitor's theme.
// GET /
func (controller *BooksController) ListPage(c *gin.Context) {
	books, err := controller.books.GetAllBooks()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, controller.resolver.Resolve(c.Request, themes.PageList), controller.pageData(c, gin.H{
		"Books":      books,
		"TotalBooks": len(books),
	}))
}

// ViewPage renders a single book. A missing id renders the template's
// absent-book state rather than a 404.
// GET /view/:id
func (controller *BooksController) ViewPage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, _ := controller.books.GetBookByID(id)

	c.HTML(http.StatusOK, controller.resolver.Resolve(c.Request, themes.PageView), controller.pageData(c, gin.H{
		"Book": book,
	}))
}

// AddForm renders an empty book form with the category dropdown.
// GET /add
func (controller *BooksController) AddForm(c *gin.Context) {
	controller.renderForm(c, nil)
}

// Add creates a book from the submitted form and redirects to the list.
// POST /add
func (controller *BooksController) Add(c *gin.Context) {
	book := bookFromForm(c)
	if err := controller.books.CreateBook(book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// EditForm renders the form pre-populated with the book's current values.
// A missing id renders the form's absent-book state.
// GET /edit/:id
func (controller *BooksController) EditForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, _ := controller.books.GetBookByID(id)
	controller.renderForm(c, book)
}

// Edit replaces every form-backed column with the submitted values and
// redirects to the list. Editing an id that no longer exists is a no-op.
// POST /edit/:id
func (controller *BooksController) Edit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book := bookFromForm(c)
	book.ID = id
	if err := controller.books.UpdateBook(book); err != nil {
		respondInternalError(c, err, "update book")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Delete removes a book and redirects to the list unconditionally; there is
// no confirmation step and deleting an absent id is not an error.
// GET /delete/:id
func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.books.DeleteBook(id); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (controller *BooksController) renderForm(c *gin.Context, book *entities.Book) {
	categories, err := controller.categories.GetAllCategories()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading categories: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, controller.resolver.Resolve(c.Request, themes.PageForm), controller.pageData(c, gin.H{
		"Book":               book,
		"Categories":         categories,
		"SelectedCategoryID": selectedCategoryID(book),
	}))
}

// selectedCategoryID returns the form's current category choice, 0 meaning
// none. Category ids start at 1, so 0 never matches a dropdown option.
func selectedCategoryID(book *entities.Book) uint {
	if book == nil || book.CategoryID == nil {
		return 0
	}
	return *book.CategoryID
}

// pageData merges per-page fields with the values every theme page needs:
// the switcher's theme list, the active theme, and the CSRF token for forms.
func (controller *BooksController) pageData(c *gin.Context, data gin.H) gin.H {
	data["Themes"] = themes.All()
	data["CurrentTheme"] = controller.resolver.Current(c.Request)
	data["CSRFToken"] = GetCSRFToken(c)
	return data
}

// formString returns the submitted value of a form field, or nil when the
// field was not part of the submission at all. A present-but-empty field is
// an empty string, not NULL.
func formString(c *gin.Context, name string) *string {
	value, ok := c.GetPostForm(name)
	if !ok {
		return nil
	}
	return &value
}

// formCategoryID parses the category selection. The empty choice and
// malformed values mean "no category" and store NULL.
func formCategoryID(c *gin.Context) *uint {
	value, ok := c.GetPostForm("category_id")
	if !ok || value == "" {
		return nil
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil
	}
	categoryID := uint(id)
	return &categoryID
}

// bookFromForm builds a Book from the submitted form fields. Fields the form
// did not include stay nil and are stored as NULL.
func bookFromForm(c *gin.Context) *entities.Book {
	return &entities.Book{
		Title:         formString(c, "title"),
		Hepburn:       formString(c, "hepburn"),
		Author:        formString(c, "author"),
		PublishedDate: formString(c, "published_date"),
		Release:       formString(c, "release"),
		URL:           formString(c, "url"),
		Summary:       formString(c, "summary"),
		CategoryID:    formCategoryID(c),
	}
}
