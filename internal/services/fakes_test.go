package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/internal/models/response_models"
	"gravecare/internal/repositories"
)

// In-memory repository fakes shared by the service tests.

type fakeBookingRepo struct {
	bookings []*db_models.Booking
	inserts  int
	failFrom int // insert index that starts failing, 0 disables
}

func (f *fakeBookingRepo) Insert(ctx context.Context, b *db_models.Booking) error {
	f.inserts++
	if f.failFrom > 0 && f.inserts >= f.failFrom {
		return errors.New("insert failed")
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	clone := *b
	f.bookings = append(f.bookings, &clone)
	return nil
}

func (f *fakeBookingRepo) FindByBookingID(ctx context.Context, bookingID string) (*db_models.Booking, error) {
	for _, b := range f.bookings {
		if b.BookingID == bookingID {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByParentID(ctx context.Context, parentID string) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, b := range f.bookings {
		if b.ParentBookingID != nil && *b.ParentBookingID == parentID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByUser(ctx context.Context, userID string) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, b := range f.bookings {
		if b.UserID.String() == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) List(ctx context.Context, filter repositories.BookingFilter) ([]db_models.Booking, int64, error) {
	var matched []db_models.Booking
	for _, b := range f.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.DueFrom != nil {
			start := *filter.DueFrom
			end := start.AddDate(0, 0, 7)
			inWindow := !b.FirstCleaningDate.Before(start) && b.FirstCleaningDate.Before(end)
			secondIn := b.FirstCleaningDate.Before(start) &&
				b.SecondCleaningDate != nil &&
				!b.SecondCleaningDate.Before(start) && b.SecondCleaningDate.Before(end)
			if !inWindow && !secondIn {
				continue
			}
		}
		matched = append(matched, *b)
	}
	total := int64(len(matched))
	offset := (filter.Page - 1) * filter.PageSize
	if offset > len(matched) {
		return nil, total, nil
	}
	endIdx := offset + filter.PageSize
	if endIdx > len(matched) {
		endIdx = len(matched)
	}
	return matched[offset:endIdx], total, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID string, status db_models.BookingStatus) error {
	for _, b := range f.bookings {
		if b.BookingID == bookingID {
			b.Status = status
		}
	}
	return nil
}

func (f *fakeBookingRepo) MarkGroupBought(ctx context.Context, parentID string) error {
	for _, b := range f.bookings {
		if b.ParentBookingID != nil && *b.ParentBookingID == parentID {
			b.IsBought = true
			b.Status = db_models.BookingStatusCompleted
		}
	}
	return nil
}

func (f *fakeBookingRepo) MarkBought(ctx context.Context, bookingID string) error {
	for _, b := range f.bookings {
		if b.BookingID == bookingID {
			b.IsBought = true
			b.Status = db_models.BookingStatusCompleted
		}
	}
	return nil
}

type fakePlanRepo struct {
	plans map[string]*db_models.SubscriptionPlan
}

func (f *fakePlanRepo) Insert(ctx context.Context, p *db_models.SubscriptionPlan) error {
	if f.plans == nil {
		f.plans = map[string]*db_models.SubscriptionPlan{}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.plans[p.ID.String()] = p
	return nil
}

func (f *fakePlanRepo) FindByID(ctx context.Context, id string) (*db_models.SubscriptionPlan, error) {
	return f.plans[id], nil
}

func (f *fakePlanRepo) FindAll(ctx context.Context) ([]db_models.SubscriptionPlan, error) {
	var out []db_models.SubscriptionPlan
	for _, p := range f.plans {
		out = append(out, *p)
	}
	return out, nil
}

type fakeFlowerRepo struct {
	flowers map[string]*db_models.Flower
}

func (f *fakeFlowerRepo) Insert(ctx context.Context, fl *db_models.Flower) error {
	if f.flowers == nil {
		f.flowers = map[string]*db_models.Flower{}
	}
	if fl.ID == uuid.Nil {
		fl.ID = uuid.New()
	}
	f.flowers[fl.ID.String()] = fl
	return nil
}
func (f *fakeFlowerRepo) Update(ctx context.Context, fl *db_models.Flower) error { return nil }
func (f *fakeFlowerRepo) Delete(ctx context.Context, id string) error            { return nil }
func (f *fakeFlowerRepo) FindByID(ctx context.Context, id string) (*db_models.Flower, error) {
	return f.flowers[id], nil
}
func (f *fakeFlowerRepo) FindAll(ctx context.Context) ([]db_models.Flower, error) { return nil, nil }

type fakeChurchRepo struct {
	churches []*db_models.Church
}

func (f *fakeChurchRepo) Insert(ctx context.Context, c *db_models.Church) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.churches = append(f.churches, c)
	return nil
}
func (f *fakeChurchRepo) FindByID(ctx context.Context, id string) (*db_models.Church, error) {
	for _, c := range f.churches {
		if c.ID.String() == id {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeChurchRepo) FindAll(ctx context.Context) ([]db_models.Church, error) {
	var out []db_models.Church
	for _, c := range f.churches {
		out = append(out, *c)
	}
	return out, nil
}

type fakePaymentService struct {
	bookingCheckouts []string // booking ids a session was opened for
	orderCheckouts   []string
	failCheckout     bool
}

func (f *fakePaymentService) CreatePaymentIntent(ctx context.Context, req request_models.CreatePaymentIntentRequest, userEmail string) (*response_models.PaymentIntentResponse, error) {
	return &response_models.PaymentIntentResponse{IntentID: "pi_test", ClientSecret: "secret"}, nil
}

func (f *fakePaymentService) CreateCheckoutSession(ctx context.Context, req request_models.CreateCheckoutSessionRequest, userEmail string) (*response_models.CheckoutSessionResponse, error) {
	return &response_models.CheckoutSessionResponse{SessionID: "cs_test", URL: "https://checkout.test/cs_test"}, nil
}

func (f *fakePaymentService) CreateBookingCheckout(ctx context.Context, booking *db_models.Booking, userEmail string) (*response_models.CheckoutSessionResponse, error) {
	if f.failCheckout {
		return nil, errors.New("gateway down")
	}
	f.bookingCheckouts = append(f.bookingCheckouts, booking.BookingID)
	return &response_models.CheckoutSessionResponse{
		SessionID: "cs_" + booking.BookingID,
		URL:       "https://checkout.test/" + booking.BookingID,
	}, nil
}

func (f *fakePaymentService) CreateOrderCheckout(ctx context.Context, order *db_models.Order, cartID, userEmail string) (*response_models.CheckoutSessionResponse, error) {
	if f.failCheckout {
		return nil, errors.New("gateway down")
	}
	f.orderCheckouts = append(f.orderCheckouts, order.OrderNumber)
	return &response_models.CheckoutSessionResponse{
		SessionID: "cs_" + order.OrderNumber,
		URL:       "https://checkout.test/" + order.OrderNumber,
	}, nil
}

type fakeCartRepo struct {
	carts   map[uuid.UUID]*db_models.Cart // keyed by user id
	deleted []uuid.UUID
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[uuid.UUID]*db_models.Cart{}}
}

func (f *fakeCartRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*db_models.Cart, error) {
	c, ok := f.carts[userID]
	if !ok {
		return nil, nil
	}
	clone := *c
	clone.Items = append([]db_models.CartItem(nil), c.Items...)
	return &clone, nil
}

func (f *fakeCartRepo) FindByID(ctx context.Context, id string) (*db_models.Cart, error) {
	for _, c := range f.carts {
		if c.ID.String() == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) Insert(ctx context.Context, cart *db_models.Cart) error {
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	f.carts[cart.UserID] = cart
	return nil
}

func (f *fakeCartRepo) InsertItem(ctx context.Context, item *db_models.CartItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	for _, c := range f.carts {
		if c.ID == item.CartID {
			c.Items = append(c.Items, *item)
			return nil
		}
	}
	return errors.New("cart not found")
}

func (f *fakeCartRepo) UpdateItem(ctx context.Context, item *db_models.CartItem) error {
	for _, c := range f.carts {
		for i := range c.Items {
			if c.Items[i].ID == item.ID {
				c.Items[i] = *item
				return nil
			}
		}
	}
	return errors.New("item not found")
}

func (f *fakeCartRepo) DeleteItem(ctx context.Context, itemID string) error {
	for _, c := range f.carts {
		for i := range c.Items {
			if c.Items[i].ID.String() == itemID {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (f *fakeCartRepo) UpdateTotal(ctx context.Context, cartID uuid.UUID, total float64) error {
	for _, c := range f.carts {
		if c.ID == cartID {
			c.Total = total
		}
	}
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, cartID uuid.UUID) error {
	f.deleted = append(f.deleted, cartID)
	for user, c := range f.carts {
		if c.ID == cartID {
			delete(f.carts, user)
		}
	}
	return nil
}

type fakeProductRepo struct {
	products map[string]*db_models.Product
}

func (f *fakeProductRepo) Insert(ctx context.Context, p *db_models.Product) error {
	if f.products == nil {
		f.products = map[string]*db_models.Product{}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.products[p.ID.String()] = p
	return nil
}
func (f *fakeProductRepo) Update(ctx context.Context, p *db_models.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id string) error            { return nil }
func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*db_models.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) FindAll(ctx context.Context) ([]db_models.Product, error) {
	return nil, nil
}

type fakeOrderRepo struct {
	orders map[string]*db_models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*db_models.Order{}}
}

func (f *fakeOrderRepo) Insert(ctx context.Context, order *db_models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders[order.ID.String()] = order
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*db_models.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) FindByUser(ctx context.Context, userID string) ([]db_models.Order, error) {
	var out []db_models.Order
	for _, o := range f.orders {
		if o.UserID.String() == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context, page, pageSize int) ([]db_models.Order, int64, error) {
	var out []db_models.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status db_models.OrderStatus, note string) error {
	o, ok := f.orders[id]
	if !ok {
		return fmt.Errorf("order %s not found", id)
	}
	o.Status = status
	if note != "" {
		o.Note = note
	}
	return nil
}

func (f *fakeOrderRepo) MarkPaid(ctx context.Context, id string, status db_models.OrderStatus, metadata []byte) error {
	o, ok := f.orders[id]
	if !ok {
		return fmt.Errorf("order %s not found", id)
	}
	o.IsPaid = true
	o.Status = status
	return nil
}

type fakeMemorialRepo struct {
	profiles map[string]*db_models.DeadPersonProfile // keyed by slug
	bios     map[uuid.UUID]*db_models.Biography
	paid     []string
}

func newFakeMemorialRepo() *fakeMemorialRepo {
	return &fakeMemorialRepo{
		profiles: map[string]*db_models.DeadPersonProfile{},
		bios:     map[uuid.UUID]*db_models.Biography{},
	}
}

func (f *fakeMemorialRepo) Insert(ctx context.Context, p *db_models.DeadPersonProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.profiles[p.Slug] = p
	return nil
}
func (f *fakeMemorialRepo) Update(ctx context.Context, p *db_models.DeadPersonProfile) error {
	f.profiles[p.Slug] = p
	return nil
}
func (f *fakeMemorialRepo) FindBySlug(ctx context.Context, slug string) (*db_models.DeadPersonProfile, error) {
	return f.profiles[slug], nil
}
func (f *fakeMemorialRepo) FindBySlugFull(ctx context.Context, slug string) (*db_models.DeadPersonProfile, error) {
	return f.profiles[slug], nil
}
func (f *fakeMemorialRepo) FindByOwner(ctx context.Context, ownerEmail string) ([]db_models.DeadPersonProfile, error) {
	var out []db_models.DeadPersonProfile
	for _, p := range f.profiles {
		if p.OwnerEmail == ownerEmail {
			out = append(out, *p)
		}
	}
	return out, nil
}
func (f *fakeMemorialRepo) MarkPaid(ctx context.Context, slug string) error {
	f.paid = append(f.paid, slug)
	if p, ok := f.profiles[slug]; ok {
		p.IsPaid = true
	}
	return nil
}
func (f *fakeMemorialRepo) UpsertBiography(ctx context.Context, bio *db_models.Biography) error {
	f.bios[bio.ProfileID] = bio
	return nil
}
func (f *fakeMemorialRepo) InsertGallery(ctx context.Context, entry *db_models.Gallery) error {
	return nil
}
func (f *fakeMemorialRepo) DeleteGallery(ctx context.Context, id string) (*db_models.Gallery, error) {
	return nil, nil
}
func (f *fakeMemorialRepo) InsertFamily(ctx context.Context, m *db_models.Family) error   { return nil }
func (f *fakeMemorialRepo) DeleteFamily(ctx context.Context, id string) error             { return nil }
func (f *fakeMemorialRepo) InsertEvent(ctx context.Context, e *db_models.Event) error     { return nil }
func (f *fakeMemorialRepo) DeleteEvent(ctx context.Context, id string) error              { return nil }
func (f *fakeMemorialRepo) InsertSocialLink(ctx context.Context, l *db_models.SocialLink) error {
	return nil
}
func (f *fakeMemorialRepo) DeleteSocialLink(ctx context.Context, id string) error { return nil }

type fakeGuestBookRepo struct {
	items map[string]*db_models.GuestBookItem
}

func newFakeGuestBookRepo() *fakeGuestBookRepo {
	return &fakeGuestBookRepo{items: map[string]*db_models.GuestBookItem{}}
}

func (f *fakeGuestBookRepo) Insert(ctx context.Context, item *db_models.GuestBookItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.ID.String()] = item
	return nil
}
func (f *fakeGuestBookRepo) FindByID(ctx context.Context, id string) (*db_models.GuestBookItem, error) {
	return f.items[id], nil
}
func (f *fakeGuestBookRepo) FindApproved(ctx context.Context, profileID uuid.UUID) ([]db_models.GuestBookItem, error) {
	var out []db_models.GuestBookItem
	for _, item := range f.items {
		if item.ProfileID == profileID && item.IsApproved {
			out = append(out, *item)
		}
	}
	return out, nil
}
func (f *fakeGuestBookRepo) FindAllForProfile(ctx context.Context, profileID uuid.UUID) ([]db_models.GuestBookItem, error) {
	var out []db_models.GuestBookItem
	for _, item := range f.items {
		if item.ProfileID == profileID {
			out = append(out, *item)
		}
	}
	return out, nil
}
func (f *fakeGuestBookRepo) Approve(ctx context.Context, id string) error {
	if item, ok := f.items[id]; ok {
		item.IsApproved = true
	}
	return nil
}
func (f *fakeGuestBookRepo) Delete(ctx context.Context, id string) error {
	delete(f.items, id)
	return nil
}

type fakeWebhookEventRepo struct {
	events map[string]*db_models.WebhookEvent
}

func newFakeWebhookEventRepo() *fakeWebhookEventRepo {
	return &fakeWebhookEventRepo{events: map[string]*db_models.WebhookEvent{}}
}

func (f *fakeWebhookEventRepo) FindByEventID(ctx context.Context, eventID string) (*db_models.WebhookEvent, error) {
	return f.events[eventID], nil
}
func (f *fakeWebhookEventRepo) Claim(ctx context.Context, event *db_models.WebhookEvent) error {
	if _, exists := f.events[event.EventID]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}
	f.events[event.EventID] = event
	return nil
}
func (f *fakeWebhookEventRepo) MarkProcessed(ctx context.Context, eventID string) error {
	if e, ok := f.events[eventID]; ok {
		e.Status = db_models.WebhookEventProcessed
	}
	return nil
}
func (f *fakeWebhookEventRepo) MarkFailed(ctx context.Context, eventID string, attempts int, lastErr string) error {
	if e, ok := f.events[eventID]; ok {
		e.Status = db_models.WebhookEventFailed
		e.Attempts = attempts
		e.LastErr = lastErr
	}
	return nil
}

type fakeQrRepo struct {
	codes map[string]*db_models.QrCode
}

func newFakeQrRepo() *fakeQrRepo {
	return &fakeQrRepo{codes: map[string]*db_models.QrCode{}}
}

func (f *fakeQrRepo) Insert(ctx context.Context, code *db_models.QrCode) error {
	if _, exists := f.codes[code.Slug]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}
	f.codes[code.Slug] = code
	return nil
}
func (f *fakeQrRepo) FindBySlug(ctx context.Context, slug string) (*db_models.QrCode, error) {
	return f.codes[slug], nil
}
func (f *fakeQrRepo) FindAll(ctx context.Context) ([]db_models.QrCode, error) {
	var out []db_models.QrCode
	for _, c := range f.codes {
		out = append(out, *c)
	}
	return out, nil
}

type fakeRevenueRepo struct {
	bookingRows []repositories.BucketSum
	orderRows   []repositories.BucketSum

	lastInterval string
	lastStart    time.Time
	lastEnd      time.Time
}

func (f *fakeRevenueRepo) BookingRevenueSeries(ctx context.Context, start, end time.Time, interval string) ([]repositories.BucketSum, error) {
	f.lastInterval, f.lastStart, f.lastEnd = interval, start, end
	return f.bookingRows, nil
}
func (f *fakeRevenueRepo) OrderRevenueSeries(ctx context.Context, start, end time.Time, interval string) ([]repositories.BucketSum, error) {
	f.lastInterval, f.lastStart, f.lastEnd = interval, start, end
	return f.orderRows, nil
}

type fakeMailer struct {
	alerts   []string
	otps     []string
	contacts []string
}

func (f *fakeMailer) SendPasswordResetOtp(to, otp string) error {
	f.otps = append(f.otps, to+":"+otp)
	return nil
}
func (f *fakeMailer) SendAdminAlert(subject, body string) error {
	f.alerts = append(f.alerts, subject)
	return nil
}
func (f *fakeMailer) SendContactNotification(name, email, subject, message string) error {
	f.contacts = append(f.contacts, email)
	return nil
}

type fakeStorage struct {
	uploads []string // folders uploaded to
	deletes []string
}

func (f *fakeStorage) Upload(ctx context.Context, data []byte, contentType, folder string) (string, error) {
	f.uploads = append(f.uploads, folder)
	return "https://bucket.s3.test/" + folder + "/" + uuid.NewString(), nil
}
func (f *fakeStorage) UploadMany(ctx context.Context, files [][]byte, contentType, folder string) ([]string, error) {
	var urls []string
	for range files {
		url, _ := f.Upload(ctx, nil, contentType, folder)
		urls = append(urls, url)
	}
	return urls, nil
}
func (f *fakeStorage) Delete(ctx context.Context, url string) error {
	f.deletes = append(f.deletes, url)
	return nil
}
func (f *fakeStorage) Exists(ctx context.Context, key string) (bool, error) { return false, nil }

type fakeUserRepo struct {
	users     map[string]*db_models.User // keyed by email
	addresses []*db_models.Address
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*db_models.User{}}
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *db_models.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]db_models.User, error) {
	var out []db_models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) InsertAddress(ctx context.Context, address *db_models.Address) error {
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	f.addresses = append(f.addresses, address)
	return nil
}

func (f *fakeUserRepo) FindAddresses(ctx context.Context, userID string) ([]db_models.Address, error) {
	var out []db_models.Address
	for _, a := range f.addresses {
		if a.UserID.String() == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeBookingMarker struct {
	marked []string
	err    error
}

func (f *fakeBookingMarker) CreateBooking(ctx context.Context, userID uuid.UUID, userEmail string, req request_models.CreateBookingRequest) (*response_models.CreateBookingResponse, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeBookingMarker) MarkAsBought(ctx context.Context, bookingID string) error {
	if f.err != nil {
		return f.err
	}
	f.marked = append(f.marked, bookingID)
	return nil
}
func (f *fakeBookingMarker) GetUserBookings(ctx context.Context, userID string) ([]response_models.BookingResponse, error) {
	return nil, nil
}
func (f *fakeBookingMarker) UpdateStatus(ctx context.Context, bookingID string, status string) error {
	return nil
}
func (f *fakeBookingMarker) ListBookings(ctx context.Context, query request_models.ListBookingsQuery) (*response_models.BookingListResponse, error) {
	return nil, nil
}
