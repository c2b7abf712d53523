package form

// The markup mirrors the admin UI's product edit screen. The sortable-list
// classes and data attributes are the contract with the browser-side
// drag-and-drop widget, which owns item order once the page is live. Every
// media item carries its url/source pair as hidden inputs so the submitted
// form reproduces the list in its current DOM order.

const formTemplate = `<div class="product-form">
  <form data-element="productForm" class="form-grid" method="post" action="{{.SaveAction}}">
    {{if .ProductID}}<input type="hidden" name="id" value="{{.ProductID}}">
    {{end}}<div class="form-group form-group__half_left">
      <fieldset>
        <label class="form-label">Product name</label>
        <input required type="text" name="title" class="form-control" placeholder="Product name" value="{{.Title}}">
      </fieldset>
    </div>
    <div class="form-group form-group__wide">
      <label class="form-label">Description</label>
      <textarea required class="form-control" name="description" data-element="productDescription" placeholder="Product description">{{.Description}}</textarea>
    </div>
    <div class="form-group form-group__wide" data-element="sortable-list-container">
      <label class="form-label">Photos</label>
      <div data-element="imageListContainer">
        <ul class="sortable-list">
{{range .Items}}{{.}}
{{end}}        </ul>
      </div>
      <button type="button" name="uploadImage" class="button-primary-outline" data-upload-action="{{.UploadAction}}"><span>Upload</span></button>
    </div>
    <div class="form-group form-group__half_left">
      <label class="form-label">Category</label>
      <select class="form-control" name="subcategory">
{{range .Options}}        <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{end}}      </select>
    </div>
    <div class="form-group form-group__half_left form-group__two-col">
      <fieldset>
        <label class="form-label">Price ($)</label>
        <input required type="number" name="price" class="form-control" placeholder="100" value="{{.Price}}">
      </fieldset>
      <fieldset>
        <label class="form-label">Discount ($)</label>
        <input required type="number" name="discount" class="form-control" placeholder="0" value="{{.Discount}}">
      </fieldset>
    </div>
    <div class="form-group form-group__part-half">
      <label class="form-label">Quantity</label>
      <input required type="number" class="form-control" name="quantity" placeholder="1" value="{{.Quantity}}">
    </div>
    <div class="form-group form-group__part-half">
      <label class="form-label">Status</label>
      <select class="form-control" name="status">
        <option value="1"{{if .StatusActive}} selected{{end}}>Active</option>
        <option value="0"{{if .StatusInactive}} selected{{end}}>Inactive</option>
      </select>
    </div>
    <div class="form-buttons">
      <button type="submit" name="save" class="button-primary-outline">Save product</button>
    </div>
  </form>
</div>
`

const itemTemplate = `<li class="products-edit__imagelist-item sortable-list__item">
  <input type="hidden" name="url" value="{{.URL}}">
  <input type="hidden" name="source" value="{{.Source}}">
  <span>
    <img draggable="false" src="/assets/icons/icon-grab.svg" data-grab-handle alt="grab">
    <img class="sortable-table__cell-img" alt="Image" src="{{.URL}}">
    <span>{{.Source}}</span>
  </span>
  <button type="button">
    <img src="/assets/icons/icon-trash.svg" data-delete-handle alt="delete">
  </button>
</li>`
