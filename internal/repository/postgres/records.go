package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

type userRecord struct {
	UserID       string    `gorm:"column:user_id;type:uuid;primaryKey"`
	Username     string    `gorm:"column:username"`
	Email        *string   `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	PhoneNumber  string    `gorm:"column:phone_number"`
	Address      string    `gorm:"column:address"`
	IsSeller     bool      `gorm:"column:is_seller"`
	IsStaff      bool      `gorm:"column:is_staff"`
	IsVerified   bool      `gorm:"column:is_verified"`
	IsActive     bool      `gorm:"column:is_active"`
	DateJoined   time.Time `gorm:"column:date_joined"`
}

func (userRecord) TableName() string { return "users" }

type categoryRecord struct {
	CategoryID string    `gorm:"column:category_id;type:uuid;primaryKey"`
	Name       string    `gorm:"column:name"`
	Slug       string    `gorm:"column:slug"`
	ParentID   *string   `gorm:"column:parent_id;type:uuid"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (categoryRecord) TableName() string { return "categories" }

type listingRecord struct {
	ListingID   string          `gorm:"column:listing_id;type:uuid;primaryKey"`
	Title       string          `gorm:"column:title"`
	Description string          `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(14,2)"`
	CategoryID  string          `gorm:"column:category_id;type:uuid"`
	SellerID    string          `gorm:"column:seller_id;type:uuid"`
	Latitude    *float64        `gorm:"column:latitude"`
	Longitude   *float64        `gorm:"column:longitude"`
	Status      string          `gorm:"column:status"`
	IsApproved  bool            `gorm:"column:is_approved"`
	ViewsCount  int             `gorm:"column:views_count"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (listingRecord) TableName() string { return "listings" }

type listingImageRecord struct {
	ImageID   string    `gorm:"column:image_id;type:uuid;primaryKey"`
	ListingID string    `gorm:"column:listing_id;type:uuid"`
	ObjectKey string    `gorm:"column:object_key"`
	URL       string    `gorm:"column:url"`
	IsMain    bool      `gorm:"column:is_main"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (listingImageRecord) TableName() string { return "listing_images" }

type statusChangeRecord struct {
	ChangeID   string    `gorm:"column:change_id;type:uuid;primaryKey"`
	ListingID  string    `gorm:"column:listing_id;type:uuid"`
	ActorID    string    `gorm:"column:actor_id"`
	FromStatus string    `gorm:"column:from_status"`
	ToStatus   string    `gorm:"column:to_status"`
	Reason     string    `gorm:"column:reason"`
	ChangedAt  time.Time `gorm:"column:changed_at"`
}

func (statusChangeRecord) TableName() string { return "listing_status_changes" }

type carRecord struct {
	ListingID    string `gorm:"column:listing_id;type:uuid;primaryKey"`
	Make         string `gorm:"column:make"`
	Model        string `gorm:"column:model"`
	Year         int    `gorm:"column:year"`
	Mileage      int    `gorm:"column:mileage"`
	Transmission string `gorm:"column:transmission"`
	FuelType     string `gorm:"column:fuel_type"`
	Color        string `gorm:"column:color"`
	IsNew        bool   `gorm:"column:is_new"`
}

func (carRecord) TableName() string { return "car_details" }

type realEstateRecord struct {
	ListingID    string          `gorm:"column:listing_id;type:uuid;primaryKey"`
	PropertyType string          `gorm:"column:property_type"`
	AreaSqm      decimal.Decimal `gorm:"column:area_sqm;type:numeric(10,2)"`
	Bedrooms     *int            `gorm:"column:bedrooms"`
	Bathrooms    *int            `gorm:"column:bathrooms"`
	IsFurnished  bool            `gorm:"column:is_furnished"`
	ForRent      bool            `gorm:"column:for_rent"`
}

func (realEstateRecord) TableName() string { return "real_estate_details" }

type hotelBookingRecord struct {
	ListingID string    `gorm:"column:listing_id;type:uuid;primaryKey"`
	HotelName string    `gorm:"column:hotel_name"`
	RoomType  string    `gorm:"column:room_type"`
	NumGuests int       `gorm:"column:num_guests"`
	CheckIn   time.Time `gorm:"column:check_in"`
	CheckOut  time.Time `gorm:"column:check_out"`
}

func (hotelBookingRecord) TableName() string { return "hotel_booking_details" }

type auctionRecord struct {
	AuctionID       string          `gorm:"column:auction_id;type:uuid;primaryKey"`
	ListingID       string          `gorm:"column:listing_id;type:uuid"`
	SellerID        string          `gorm:"column:seller_id;type:uuid"`
	StartingBid     decimal.Decimal `gorm:"column:starting_bid;type:numeric(14,2)"`
	CurrentBid      decimal.Decimal `gorm:"column:current_bid;type:numeric(14,2)"`
	HighestBidderID *string         `gorm:"column:highest_bidder_id;type:uuid"`
	StartTime       time.Time       `gorm:"column:start_time"`
	EndTime         time.Time       `gorm:"column:end_time"`
	Status          string          `gorm:"column:status"`
	Version         int             `gorm:"column:version"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
}

func (auctionRecord) TableName() string { return "auctions" }

type bidRecord struct {
	BidID     string          `gorm:"column:bid_id;type:uuid;primaryKey"`
	AuctionID string          `gorm:"column:auction_id;type:uuid"`
	BidderID  string          `gorm:"column:bidder_id;type:uuid"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric(14,2)"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	IsWinning bool            `gorm:"column:is_winning"`
}

func (bidRecord) TableName() string { return "bids" }

type orderRecord struct {
	OrderID     string          `gorm:"column:order_id;type:uuid;primaryKey"`
	ListingID   string          `gorm:"column:listing_id;type:uuid"`
	BuyerID     string          `gorm:"column:buyer_id;type:uuid"`
	SellerID    *string         `gorm:"column:seller_id;type:uuid"`
	Quantity    int             `gorm:"column:quantity"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(14,2)"`
	Status      string          `gorm:"column:status"`
	Notes       string          `gorm:"column:notes"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

type reviewRecord struct {
	ReviewID   string    `gorm:"column:review_id;type:uuid;primaryKey"`
	ReviewerID string    `gorm:"column:reviewer_id;type:uuid"`
	ListingID  *string   `gorm:"column:listing_id;type:uuid"`
	SellerID   *string   `gorm:"column:seller_id;type:uuid"`
	Rating     int       `gorm:"column:rating"`
	Comment    string    `gorm:"column:comment"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (reviewRecord) TableName() string { return "reviews" }

type conversationRecord struct {
	ConversationID string    `gorm:"column:conversation_id;type:uuid;primaryKey"`
	ListingID      *string   `gorm:"column:listing_id;type:uuid"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (conversationRecord) TableName() string { return "conversations" }

type participantRecord struct {
	ConversationID string `gorm:"column:conversation_id;type:uuid;primaryKey"`
	UserID         string `gorm:"column:user_id;type:uuid;primaryKey"`
}

func (participantRecord) TableName() string { return "conversation_participants" }

type messageRecord struct {
	MessageID      string    `gorm:"column:message_id;type:uuid;primaryKey"`
	ConversationID string    `gorm:"column:conversation_id;type:uuid"`
	SenderID       string    `gorm:"column:sender_id;type:uuid"`
	ReceiverID     string    `gorm:"column:receiver_id;type:uuid"`
	ListingID      *string   `gorm:"column:listing_id;type:uuid"`
	Content        string    `gorm:"column:content"`
	IsRead         bool      `gorm:"column:is_read"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (messageRecord) TableName() string { return "messages" }

type locationRecord struct {
	LocationID string    `gorm:"column:location_id;type:uuid;primaryKey"`
	Name       string    `gorm:"column:name"`
	NameEn     string    `gorm:"column:name_en"`
	Latitude   float64   `gorm:"column:latitude"`
	Longitude  float64   `gorm:"column:longitude"`
	ParentID   *string   `gorm:"column:parent_id;type:uuid"`
	Level      string    `gorm:"column:level"`
	IsActive   bool      `gorm:"column:is_active"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (locationRecord) TableName() string { return "locations" }

type savedLocationRecord struct {
	SavedLocationID string    `gorm:"column:saved_location_id;type:uuid;primaryKey"`
	UserID          string    `gorm:"column:user_id;type:uuid"`
	Name            string    `gorm:"column:name"`
	Latitude        float64   `gorm:"column:latitude"`
	Longitude       float64   `gorm:"column:longitude"`
	Address         string    `gorm:"column:address"`
	IsDefault       bool      `gorm:"column:is_default"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (savedLocationRecord) TableName() string { return "saved_locations" }

type inquiryRecord struct {
	InquiryID  string    `gorm:"column:inquiry_id;type:uuid;primaryKey"`
	Name       string    `gorm:"column:name"`
	Email      string    `gorm:"column:email"`
	Phone      string    `gorm:"column:phone"`
	Address    string    `gorm:"column:address"`
	Type       string    `gorm:"column:inquiry_type"`
	ListingID  *string   `gorm:"column:listing_id;type:uuid"`
	Message    string    `gorm:"column:message"`
	Status     string    `gorm:"column:status"`
	AdminNotes string    `gorm:"column:admin_notes"`
	IPAddress  string    `gorm:"column:ip_address"`
	UserAgent  string    `gorm:"column:user_agent"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (inquiryRecord) TableName() string { return "inquiries" }

type notificationRecord struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	InquiryID string    `gorm:"column:inquiry_id;type:uuid"`
	Channel   string    `gorm:"column:channel"`
	State     string    `gorm:"column:state"`
	Attempts  int       `gorm:"column:attempts"`
	Error     string    `gorm:"column:error"`
	At        time.Time `gorm:"column:at"`
}

func (notificationRecord) TableName() string { return "inquiry_notifications" }
