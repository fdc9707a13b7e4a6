package controller

// Resolve applies the outcome of a previously issued request and returns any
// follow-up requests. Each successful mutation triggers exactly one re-fetch:
// category creation re-lists categories, product create/update/delete re-lists
// the current product page. A failed mutation only replaces the notification.
func (s State) Resolve(resp Response) (State, []Request) {
	if s.inFlight > 0 {
		s.inFlight--
	}

	switch resp.Request.Kind {
	case RequestListCategories:
		return s.resolveCategories(resp), nil

	case RequestListProducts:
		return s.resolveProducts(resp)

	case RequestCreateCategory:
		if resp.Err != nil {
			return s.notify(MsgAddCategoryFailed, SeverityError), nil
		}
		s = s.notify(messageOr(resp.Message, msgCategoryAdded), SeveritySuccess)
		s.NewCategoryName = ""
		s, req := s.listCategories()
		return s, []Request{req}

	case RequestCreateProduct, RequestUpdateProduct:
		if resp.Err != nil {
			return s.notify(MsgSubmitFailed, SeverityError), nil
		}
		fallback := msgProductCreated
		if resp.Request.Kind == RequestUpdateProduct {
			fallback = msgProductUpdated
		}
		s = s.notify(messageOr(resp.Message, fallback), SeveritySuccess)
		s = s.CancelEdit()
		s, req := s.listProducts()
		return s, []Request{req}

	case RequestDeleteProduct:
		if resp.Err != nil {
			return s.notify(MsgDeleteFailed, SeverityError), nil
		}
		s = s.notify(messageOr(resp.Message, msgProductDeleted), SeveritySuccess)
		s, req := s.listProducts()
		return s, []Request{req}
	}

	return s, nil
}

// resolveCategories applies a category listing unless a newer one was issued.
// A failed listing keeps the previous categories.
func (s State) resolveCategories(resp Response) State {
	if resp.Request.Seq != s.latestCategories || resp.Err != nil {
		return s
	}
	s.Categories = resp.Categories
	return s
}

// resolveProducts applies a product page unless a newer one was issued, then
// keeps Page inside [1, TotalPages]. When the server reports fewer pages than
// the current one, or the current page came back empty after page 1, the
// controller steps back and fetches again.
func (s State) resolveProducts(resp Response) (State, []Request) {
	if resp.Request.Seq != s.latestProducts || resp.Err != nil {
		return s, nil
	}

	page := resp.Page.Normalize()
	s.Products = page.Products
	s.TotalPages = page.TotalPages

	switch {
	case s.Page > s.TotalPages:
		s.Page = s.TotalPages
	case len(s.Products) == 0 && s.Page > 1:
		s.Page--
	default:
		return s, nil
	}

	s, req := s.listProducts()
	return s, []Request{req}
}

func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
