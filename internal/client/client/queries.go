package client

// GraphQL operation names and query documents. The selections are part of the
// backend compatibility contract; do not reflow or trim them.

const loginOperationName = "Login"

const loginQuery = `mutation Login($loginDTO: LoginInputDTO!) {
        login(input: $loginDTO) {
          token {
            accessToken
            refreshToken
          }
          protocol {
            protocol
            protocolId
            userBusinessPartner
            type
            document
            email
            phone
            name
            segment
            ficticious
            birthDate
            deathDate
            pId
          }
          user {
            document
            name
            email
            phone
            profilePhoto
            id
            status
            documentIsValid
          }
        }
      }`

const siteListOperationName = "SiteListByBusinessPartnerV2"

const siteListQuery = `query SiteListByBusinessPartnerV2($input: SiteListByBusinessPartnerV2InputDTO!) {
        siteListByBusinessPartnerV2(input: $input) {
          sites {
            id
            clientNumber
            siteNumber
            address
            status
            owner
            contract
            contractAccount
          }
        }
      }`

const billsHistoryOperationName = "BillsHistory"

const billsHistoryQuery = `query BillsHistory($billsHistoryInput: BillsHistoryInputDTO!) {
        billsHistory(input: $billsHistoryInput) {
          bills {
            billIdentifier
            status
            value
            referenceMonth
            site {
              id
              contract
            }
            dueDate
            consumption
          }
        }
      }`
