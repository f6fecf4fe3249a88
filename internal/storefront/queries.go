package storefront

// Operation names, also used as the GraphQL operationName
const (
	OpPredictiveSearch    = "PredictiveSearch"
	OpCartCreate          = "CartCreate"
	OpCartLinesAdd        = "CartLinesAdd"
	OpCart                = "Cart"
	OpHeroSlides          = "HeroSlides"
	OpCategories          = "Categories"
	OpBestSellers         = "BestSellers"
	OpFeaturedCollections = "FeaturedCollections"
)

const moneyFields = `amount currencyCode`

const cartFragment = `
fragment CartFields on Cart {
  id
  checkoutUrl
  totalQuantity
  cost {
    subtotalAmount { ` + moneyFields + ` }
  }
  lines(first: 100) {
    nodes {
      id
      quantity
      cost {
        totalAmount { ` + moneyFields + ` }
      }
      merchandise {
        ... on ProductVariant {
          id
          title
          product { title handle }
        }
      }
    }
  }
}
`

const collectionFragment = `
fragment CollectionFields on Collection {
  id
  handle
  title
  image { url altText }
}
`

const predictiveSearchQuery = `
query PredictiveSearch(
  $term: String!
  $limit: Int!
  $country: CountryCode
  $language: LanguageCode
) @inContext(country: $country, language: $language) {
  predictiveSearch(query: $term, limit: $limit, limitScope: EACH, types: [PRODUCT]) {
    products {
      id
      handle
      title
      selectedOrFirstAvailableVariant {
        id
        image { url altText }
        price { ` + moneyFields + ` }
      }
    }
  }
}
`

const cartCreateMutation = `
mutation CartCreate(
  $input: CartInput!
  $country: CountryCode
  $language: LanguageCode
) @inContext(country: $country, language: $language) {
  cartCreate(input: $input) {
    cart { ...CartFields }
    userErrors { field message }
  }
}
` + cartFragment

const cartLinesAddMutation = `
mutation CartLinesAdd(
  $cartId: ID!
  $lines: [CartLineInput!]!
  $country: CountryCode
  $language: LanguageCode
) @inContext(country: $country, language: $language) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart { ...CartFields }
    userErrors { field message }
  }
}
` + cartFragment

const cartQuery = `
query Cart(
  $cartId: ID!
  $country: CountryCode
  $language: LanguageCode
) @inContext(country: $country, language: $language) {
  cart(id: $cartId) { ...CartFields }
}
` + cartFragment

const heroSlidesQuery = `
query HeroSlides($type: String!, $first: Int!) {
  metaobjects(type: $type, first: $first) {
    nodes {
      id
      handle
      media: field(key: "media") {
        reference {
          ... on MediaImage { image { url altText } }
        }
      }
      fields { key value }
    }
  }
}
`

const categoriesQuery = `
query Categories(
  $first: Int!
  $country: CountryCode
  $language: LanguageCode
) @inContext(country: $country, language: $language) {
  collections(first: $first, sortKey: TITLE) {
    nodes { ...CollectionFields }
  }
}
` + collectionFragment

const bestSellersQuery = `
query BestSellers(
  $first: Int!
  $country: CountryCode
  $language: LanguageCode
) @inContext(country: $country, language: $language) {
  products(first: $first, sortKey: BEST_SELLING) {
    nodes {
      id
      handle
      title
      featuredImage { url altText }
      priceRange {
        minVariantPrice { ` + moneyFields + ` }
      }
      variants(first: 5) {
        nodes {
          id
          title
          availableForSale
          price { ` + moneyFields + ` }
          image { url altText }
        }
      }
    }
  }
}
`

const featuredCollectionsQuery = `
query FeaturedCollections(
  $first: Int!
  $country: CountryCode
  $language: LanguageCode
) @inContext(country: $country, language: $language) {
  collections(first: $first, sortKey: UPDATED_AT, reverse: true) {
    nodes { ...CollectionFields }
  }
}
` + collectionFragment

// documents maps operation names to their GraphQL documents
var documents = map[string]string{
	OpPredictiveSearch:    predictiveSearchQuery,
	OpCartCreate:          cartCreateMutation,
	OpCartLinesAdd:        cartLinesAddMutation,
	OpCart:                cartQuery,
	OpHeroSlides:          heroSlidesQuery,
	OpCategories:          categoriesQuery,
	OpBestSellers:         bestSellersQuery,
	OpFeaturedCollections: featuredCollectionsQuery,
}

// Document returns the GraphQL document for an operation
func Document(op string) (string, bool) {
	doc, ok := documents[op]
	return doc, ok
}
