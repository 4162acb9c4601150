package tarkovdev

// The upstream API answers one POST per query; whitespace runs are collapsed
// before sending to keep request bodies small.

const queryItems = `
query TarkovMarketItems($lang: LanguageCode, $gameMode: GameMode) {
    items(lang: $lang, gameMode: $gameMode) {
        id
        name
        normalizedName
        basePrice
        lastLowPrice
        avg24hPrice
        types
        categories {
            normalizedName
        }
        properties {
            ... on ItemPropertiesWeapon {
                defaultPreset {
                    id
                }
            }
        }
        buyFor {
            priceRUB
            price
            currency
            vendor {
                normalizedName
                ... on TraderOffer {
                    minTraderLevel
                    taskUnlock {
                        id
                    }
                }
            }
        }
        sellFor {
            priceRUB
            price
            currency
            vendor {
                normalizedName
            }
        }
    }
}`

const queryBarters = `
query TarkovMarketBarters($lang: LanguageCode, $gameMode: GameMode) {
    barters(lang: $lang, gameMode: $gameMode) {
        id
        level
        trader {
            normalizedName
        }
        taskUnlock {
            id
        }
        requiredItems {
            item {
                id
            }
            count
            attributes {
                type
                name
                value
            }
        }
        rewardItems {
            item {
                id
            }
            count
        }
    }
}`

const queryCrafts = `
query TarkovMarketCrafts($lang: LanguageCode, $gameMode: GameMode) {
    crafts(lang: $lang, gameMode: $gameMode) {
        id
        level
        duration
        station {
            normalizedName
        }
        taskUnlock {
            id
        }
        requiredItems {
            item {
                id
            }
            count
            attributes {
                type
                name
                value
            }
        }
        rewardItems {
            item {
                id
            }
            count
        }
    }
}`

const queryFleaMarket = `
query TarkovMarketFlea($lang: LanguageCode, $gameMode: GameMode) {
    fleaMarket(lang: $lang, gameMode: $gameMode) {
        minPlayerLevel
        sellOfferFeeRate
        sellRequirementFeeRate
    }
}`
